package arm64

// Memory-ordering suffixes of the atomic instructions and the bits they set.
type ordering struct {
	suffix  string
	acquire uint32
	release uint32
}

var (
	atomicOrderings = []ordering{
		{"", 0, 0},
		{"a", 1 << 23, 0},
		{"l", 0, 1 << 22},
		{"al", 1 << 23, 1 << 22},
	}

	// Compare-and-swap keeps acquire in bit 22 and release in bit 15.
	casOrderings = []ordering{
		{"", 0, 0},
		{"a", 1 << 22, 0},
		{"l", 0, 1 << 15},
		{"al", 1 << 22, 1 << 15},
	}

	// atomicOps are the load-and-operate operations, with the opc field at
	// bits 14:12.
	atomicOps = []struct {
		name string
		opc  uint32
	}{
		{"add", 0x0000},
		{"clr", 0x1000},
		{"eor", 0x2000},
		{"set", 0x3000},
		{"smax", 0x4000},
		{"smin", 0x5000},
		{"umax", 0x6000},
		{"umin", 0x7000},
	}

	loadOperate = sized{b: 0x38200000, h: 0x78200000, w: 0xB8200000, x: 0xF8200000}
	casBase     = sized{b: 0x08A07C00, h: 0x48A07C00, w: 0x88A07C00, x: 0xC8A07C00}
)

const swpOpc = 0x8000

// sourceTarget is "op Rs, Rt, [Xn|SP]".
func sourceTarget(rt Pred, template uint32) []rule {
	return []rule{on(P(rt, rt, memBaseZero), enc(template, rm(0), rd(1), memBaseReg(2)))}
}

// sourceOnly is the store alias "op Rs, [Xn|SP]", which discards the loaded
// value into the zero register.
func sourceOnly(rt Pred, template uint32) []rule {
	return []rule{on(P(rt, memBaseZero), enc(template, rm(0), zr(posRd), memBaseReg(1)))}
}

func (t *Table) addAtomic() {
	for _, op := range atomicOps {
		for _, o := range atomicOrderings {
			t.addSized("ld"+op.name+o.suffix, loadOperate.or(op.opc|o.acquire|o.release), sourceTarget)
			if o.acquire == 0 {
				t.addSized("st"+op.name+o.suffix, loadOperate.or(op.opc|o.release), sourceOnly)
			}
		}
	}
	for _, o := range atomicOrderings {
		t.addSized("swp"+o.suffix, loadOperate.or(swpOpc|o.acquire|o.release), sourceTarget)
	}
	for _, o := range casOrderings {
		t.addSized("cas"+o.suffix, casBase.or(o.acquire|o.release), sourceTarget)
	}
}
