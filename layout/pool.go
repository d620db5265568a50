package layout

import "sync"

// maxBoxes bounds the measurement arena kept by pooled printers.
const maxBoxes = 16 * 1024

var printerPool = sync.Pool{
	New: func() any {
		return &printer{}
	},
}

func acquirePrinter() *printer {
	return printerPool.Get().(*printer)
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.out.clear()
	p.cfg = Config{}
	if cap(p.boxes) > maxBoxes {
		p.boxes = nil
	} else {
		clear(p.boxes)
		p.boxes = p.boxes[:0]
	}
	printerPool.Put(p)
}
