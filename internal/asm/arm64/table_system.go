package arm64

// Barrier option SY, used when dmb/dsb/isb are written without an operand.
const barrierSY = 0xf

func (t *Table) addSystem() {
	t.add("br", on(P(xr), enc(0xD61F0000, rn(0))))
	t.add("blr", on(P(xr), enc(0xD63F0000, rn(0))))
	t.add("brk", on(P(imm), enc(0xD4200000, immf(0, 16, 5))))

	barriers := []struct {
		name     string
		template uint32
	}{
		{"dsb", 0xD503309F},
		{"dmb", 0xD50330BF},
		{"isb", 0xD50330DF},
	}
	for _, b := range barriers {
		t.add(b.name,
			on(P(imm), enc(b.template, immf(0, 4, 8))),
			on(P(), enc(b.template|barrierSY<<8)),
		)
	}
}
