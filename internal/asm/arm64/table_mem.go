package arm64

// loadStore lists the templates of one single-register load or store.
type loadStore struct {
	name     string
	rt       Pred
	size     int64
	unsigned uint32
	unscaled uint32
	pre      uint32
	post     uint32
	register uint32
}

var loadStores = []loadStore{
	{"ldr", xr, 8, 0xF9400000, 0xF8400000, 0xF8400C00, 0xF8400400, 0xF8600800},
	{"ldr", wr, 4, 0xB9400000, 0xB8400000, 0xB8400C00, 0xB8400400, 0xB8600800},
	{"str", xr, 8, 0xF9000000, 0xF8000000, 0xF8000C00, 0xF8000400, 0xF8200800},
	{"str", wr, 4, 0xB9000000, 0xB8000000, 0xB8000C00, 0xB8000400, 0xB8200800},
	{"ldrb", wr, 1, 0x39400000, 0x38400000, 0x38400C00, 0x38400400, 0x38600800},
	{"strb", wr, 1, 0x39000000, 0x38000000, 0x38000C00, 0x38000400, 0x38200800},
	{"ldrh", wr, 2, 0x79400000, 0x78400000, 0x78400C00, 0x78400400, 0x78600800},
	{"strh", wr, 2, 0x79000000, 0x78000000, 0x78000C00, 0x78000400, 0x78200800},
	{"ldrsb", xr, 1, 0x39800000, 0x38800000, 0x38800C00, 0x38800400, 0x38A00800},
	{"ldrsb", wr, 1, 0x39C00000, 0x38C00000, 0x38C00C00, 0x38C00400, 0x38E00800},
	{"ldrsh", xr, 2, 0x79800000, 0x78800000, 0x78800C00, 0x78800400, 0x78A00800},
	{"ldrsh", wr, 2, 0x79C00000, 0x78C00000, 0x78C00C00, 0x78C00400, 0x78E00800},
	{"ldrsw", xr, 4, 0xB9800000, 0xB8800000, 0xB8800C00, 0xB8800400, 0xB8A00800},
}

// unscaledNames maps each load/store to its explicit unscaled mnemonic.
var unscaledNames = map[string]string{
	"ldr": "ldur", "str": "stur",
	"ldrb": "ldurb", "strb": "sturb",
	"ldrh": "ldurh", "strh": "sturh",
	"ldrsb": "ldursb", "ldrsh": "ldursh", "ldrsw": "ldursw",
}

// rules returns the addressing forms in priority order. Offsets that are
// negative or not a multiple of the access size fall back to the unscaled
// encoding.
func (ls loadStore) rules() []rule {
	return []rule{
		on(P(ls.rt, memScaled(ls.size)), enc(ls.unsigned, rd(0), memBaseReg(1), memImm(1, ls.size, 12, 10))),
		on(P(ls.rt, memUnscaled), enc(ls.unscaled, rd(0), memBaseReg(1), memImm(1, 1, 9, 12))),
		on(P(ls.rt, memPreIndex), enc(ls.pre, rd(0), memBaseReg(1), memImm(1, 1, 9, 12))),
		on(P(ls.rt, memBase, postIndex), enc(ls.post, rd(0), memBaseReg(1), immf(2, 9, 12))),
		on(P(ls.rt, memRegister(ls.size)), enc(ls.register, rd(0), memBaseReg(1), memIndex(1, ls.size))),
	}
}

func (ls loadStore) unscaledRule() rule {
	return on(P(ls.rt, memUnscaled), enc(ls.unscaled, rd(0), memBaseReg(1), memImm(1, 1, 9, 12)))
}

type pair struct {
	name              string
	rt                Pred
	size              int64
	offset, pre, post uint32
}

var pairs = []pair{
	{"ldp", xr, 8, 0xA9400000, 0xA9C00000, 0xA8C00000},
	{"ldp", wr, 4, 0x29400000, 0x29C00000, 0x28C00000},
	{"stp", xr, 8, 0xA9000000, 0xA9800000, 0xA8800000},
	{"stp", wr, 4, 0x29000000, 0x29800000, 0x28800000},
}

func (p pair) rules() []rule {
	return []rule{
		on(P(p.rt, p.rt, memPair(p.size, false)), enc(p.offset, rd(0), rt2(1), memBaseReg(2), memImm(2, p.size, 7, 15))),
		on(P(p.rt, p.rt, memPair(p.size, true)), enc(p.pre, rd(0), rt2(1), memBaseReg(2), memImm(2, p.size, 7, 15))),
		on(P(p.rt, p.rt, memBase, pairPostIndex(p.size)), enc(p.post, rd(0), rt2(1), memBaseReg(2), scaledImm(3, p.size, 7, 15))),
	}
}

func (t *Table) addLoadStore() {
	grouped := map[string][]rule{}
	unscaled := map[string][]rule{}
	var order []string
	for _, ls := range loadStores {
		if _, seen := grouped[ls.name]; !seen {
			order = append(order, ls.name)
		}
		grouped[ls.name] = append(grouped[ls.name], ls.rules()...)
		u := unscaledNames[ls.name]
		unscaled[u] = append(unscaled[u], ls.unscaledRule())
	}
	for _, p := range pairs {
		if _, seen := grouped[p.name]; !seen {
			order = append(order, p.name)
		}
		grouped[p.name] = append(grouped[p.name], p.rules()...)
	}
	for _, name := range order {
		t.add(name, grouped[name]...)
	}
	for name, rules := range unscaled {
		t.add(name, rules...)
	}
}

// sized holds one template per access size: byte, halfword, word and
// doubleword.
type sized struct {
	b, h, w, x uint32
}

func (s sized) or(bits uint32) sized {
	return sized{b: s.b | bits, h: s.h | bits, w: s.w | bits, x: s.x | bits}
}

// addSized registers name for X and W registers plus its byte and halfword
// variants, which only take W registers.
func (t *Table) addSized(name string, s sized, build func(rt Pred, template uint32) []rule) {
	t.add(name, append(build(xr, s.x), build(wr, s.w)...)...)
	t.add(name+"b", build(wr, s.b)...)
	t.add(name+"h", build(wr, s.h)...)
}

func singleRegister(rt Pred, template uint32) []rule {
	return []rule{on(P(rt, memBaseZero), enc(template, rd(0), memBaseReg(1)))}
}

// statusRegister is the store-exclusive form: status register, data register,
// address.
func statusRegister(rt Pred, template uint32) []rule {
	return []rule{on(P(wr, rt, memBaseZero), enc(template, rm(0), rd(1), memBaseReg(2)))}
}

// addOrdered registers acquire/release and exclusive loads and stores.
func (t *Table) addOrdered() {
	t.addSized("ldar", sized{0x08DFFC00, 0x48DFFC00, 0x88DFFC00, 0xC8DFFC00}, singleRegister)
	t.addSized("stlr", sized{0x089FFC00, 0x489FFC00, 0x889FFC00, 0xC89FFC00}, singleRegister)
	t.addSized("ldapr", sized{0x38BFC000, 0x78BFC000, 0xB8BFC000, 0xF8BFC000}, singleRegister)
	t.addSized("ldlar", sized{0x08DF7C00, 0x48DF7C00, 0x88DF7C00, 0xC8DF7C00}, singleRegister)
	t.addSized("stllr", sized{0x089F7C00, 0x489F7C00, 0x889F7C00, 0xC89F7C00}, singleRegister)
	t.addSized("ldxr", sized{0x085F7C00, 0x485F7C00, 0x885F7C00, 0xC85F7C00}, singleRegister)
	t.addSized("ldaxr", sized{0x085FFC00, 0x485FFC00, 0x885FFC00, 0xC85FFC00}, singleRegister)
	t.addSized("stxr", sized{0x08007C00, 0x48007C00, 0x88007C00, 0xC8007C00}, statusRegister)
	t.addSized("stlxr", sized{0x0800FC00, 0x4800FC00, 0x8800FC00, 0xC800FC00}, statusRegister)
}
