package arm64

// addLogical registers the shifted-register logical instructions that the base
// table does not cover.
func (t *Table) addLogical() {
	logical := []struct {
		name   string
		x, w32 uint32
	}{
		{"and", 0x8A000000, 0x0A000000},
		{"ands", 0xEA000000, 0x6A000000},
		{"bic", 0x8A200000, 0x0A200000},
		{"bics", 0xEA200000, 0x6A200000},
		{"eor", 0xCA000000, 0x4A000000},
		{"eon", 0xCA200000, 0x4A200000},
	}
	for _, op := range logical {
		t.add(op.name,
			on(P(xr, xr, xrShift).Opt(shift), enc(op.x, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
			on(P(wr, wr, wrShift).Opt(shift), enc(op.w32, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		)
	}
	t.add("tst",
		on(P(xr, xrShift).Opt(shift), enc(0xEA00001F, rn(0), rm(1), shifts(2, 22, 10))),
		on(P(wr, wrShift).Opt(shift), enc(0x6A00001F, rn(0), rm(1), shifts(2, 22, 10))),
	)
}

// addBitfield registers the bitfield moves and their extract/insert aliases.
func (t *Table) addBitfield() {
	moves := []struct {
		move, extract, insert string
		x, w32                uint32
	}{
		{"ubfm", "ubfx", "ubfiz", 0xD3400000, 0x53000000},
		{"sbfm", "sbfx", "sbfiz", 0x93400000, 0x13000000},
		{"bfm", "bfxil", "bfi", 0xB3400000, 0x33000000},
	}
	for _, m := range moves {
		t.add(m.move,
			on(P(xr, xr, imm, imm), enc(m.x, rd(0), rn(1), immf(2, 6, 16), immf(3, 6, 10))),
			on(P(wr, wr, imm, imm), enc(m.w32, rd(0), rn(1), immf(2, 6, 16), immf(3, 6, 10))),
		)
		t.add(m.extract,
			on(P(xr, xr, imm, imm), enc(m.x, rd(0), rn(1), bitfieldExtract(2, 3))),
			on(P(wr, wr, imm, imm), enc(m.w32, rd(0), rn(1), bitfieldExtract(2, 3))),
		)
		t.add(m.insert,
			on(P(xr, xr, imm, imm), enc(m.x, rd(0), rn(1), bitfieldInsert(2, 3, 64))),
			on(P(wr, wr, imm, imm), enc(m.w32, rd(0), rn(1), bitfieldInsert(2, 3, 32))),
		)
	}
}
