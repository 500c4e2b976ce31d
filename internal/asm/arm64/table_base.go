package arm64

// addBase registers the integer data-processing, conditional, CRC, pointer
// authentication and hint instructions.
func (t *Table) addBase() {
	t.add("adc",
		on(P(xr, xr, xr), enc(0x9A000000, rd(0), rn(1), rm(2))),
		on(P(wr, wr, wr), enc(0x1A000000, rd(0), rn(1), rm(2))),
	)
	t.add("adcs",
		on(P(xr, xr, xr), enc(0xBA000000, rd(0), rn(1), rm(2))),
		on(P(wr, wr, wr), enc(0x3A000000, rd(0), rn(1), rm(2))),
	)
	t.add("add",
		// ADD (shifted register)
		on(P(xr, xr, xrArith).Opt(arithShift), enc(0x8B000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(wr, wr, wrArith).Opt(arithShift), enc(0x0B000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		// ADD (immediate)
		on(P(xrOrSP, xrOrSP, immShift).Opt(lsl), enc(0x91000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wrOrWSP, wrOrWSP, immShift).Opt(lsl), enc(0x11000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		// ADD (extended register)
		on(P(wrOrWSP, wrOrWSP, wrExtend).Opt(extension), enc(0x0B200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
		on(P(xrOrSP, xrOrSP, xrExtend).Opt(extension), enc(0x8B200000, rd(0), rn(1), rm(2), extendX(3, 13, 10))),
		on(P(xrOrSP, xrOrSP, wrExtend).Opt(extension), enc(0x8B200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
	)
	t.add("adds",
		on(P(xr, xr, xrArith).Opt(arithShift), enc(0xAB000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(wr, wr, wrArith).Opt(arithShift), enc(0x2B000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(xr, xrOrSP, immShift).Opt(lsl), enc(0xB1000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wr, wrOrWSP, immShift).Opt(lsl), enc(0x31000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wr, wrOrWSP, wrExtend).Opt(extension), enc(0x2B200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
		on(P(xr, xrOrSP, xrExtend).Opt(extension), enc(0xAB200000, rd(0), rn(1), rm(2), extendX(3, 13, 10))),
		on(P(xr, xrOrSP, wrExtend).Opt(extension), enc(0xAB200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
	)
	t.add("asr",
		on(P(xr, xr, xr), enc(0x9AC02800, rd(0), rn(1), rm(2))),
		on(P(wr, wr, wr), enc(0x1AC02800, rd(0), rn(1), rm(2))),
		on(P(xr, xr, imm), enc(0x9340FC00, rd(0), rn(1), immf(2, 6, 16))),
		on(P(wr, wr, imm), enc(0x13007C00, rd(0), rn(1), immf(2, 6, 16))),
	)
	t.add("asrv",
		on(P(xr, xr, xr), enc(0x9AC02800, rd(0), rn(1), rm(2))),
		on(P(wr, wr, wr), enc(0x1AC02800, rd(0), rn(1), rm(2))),
	)
	t.add("autda",
		on(P(xr, xrOrSP), enc(0xDAC11800, rd(0), rn(1))),
	)
	t.add("autdb",
		on(P(xr, xrOrSP), enc(0xDAC11C00, rd(0), rn(1))),
	)
	t.add("autdza",
		on(P(xr), enc(0xDAC13BE0, rd(0))),
	)
	t.add("autdzb",
		on(P(xr), enc(0xDAC13FE0, rd(0))),
	)
	t.add("autia",
		on(P(xr, xrOrSP), enc(0xDAC11000, rd(0), rn(1))),
	)
	t.add("autia1716",
		on(P(), enc(0xD503219F)),
	)
	t.add("autiasp",
		on(P(), enc(0xD50323BF)),
	)
	t.add("autiaz",
		on(P(), enc(0xD503239F)),
	)
	t.add("autiza",
		on(P(xr), enc(0xDAC133E0, rd(0))),
	)
	t.add("autib",
		on(P(xr, xrOrSP), enc(0xDAC11400, rd(0), rn(1))),
	)
	t.add("autib1716",
		on(P(), enc(0xD50321DF)),
	)
	t.add("autibsp",
		on(P(), enc(0xD50323FF)),
	)
	t.add("autibz",
		on(P(), enc(0xD50323DF)),
	)
	t.add("autizb",
		on(P(xr), enc(0xDAC137E0, rd(0))),
	)
	t.add("ccmn",
		on(P(xr, imm, imm, cond), enc(0xBA400800, rn(0), immf(1, 5, 16), immf(2, 4, 0), condf(3, 12))),
		on(P(wr, imm, imm, cond), enc(0x3A400800, rn(0), immf(1, 5, 16), immf(2, 4, 0), condf(3, 12))),
		on(P(xr, xr, imm, cond), enc(0xBA400000, rn(0), rm(1), immf(2, 4, 0), condf(3, 12))),
		on(P(wr, wr, imm, cond), enc(0x3A400000, rn(0), rm(1), immf(2, 4, 0), condf(3, 12))),
	)
	t.add("ccmp",
		on(P(xr, imm, imm, cond), enc(0xFA400800, rn(0), immf(1, 5, 16), immf(2, 4, 0), condf(3, 12))),
		on(P(wr, imm, imm, cond), enc(0x7A400800, rn(0), immf(1, 5, 16), immf(2, 4, 0), condf(3, 12))),
		on(P(xr, xr, imm, cond), enc(0xFA400000, rn(0), rm(1), immf(2, 4, 0), condf(3, 12))),
		on(P(wr, wr, imm, cond), enc(0x7A400000, rn(0), rm(1), immf(2, 4, 0), condf(3, 12))),
	)
	t.add("cfinv",
		on(P(), enc(0xD500401F)),
	)
	t.add("cinc",
		on(P(xr, xr, cond), enc(0x9A800400, rd(0), rn(1), rm(1), invCond(2, 12))),
		on(P(wr, wr, cond), enc(0x1A800400, rd(0), rn(1), rm(1), invCond(2, 12))),
	)
	t.add("cinv",
		on(P(xr, xr, cond), enc(0xDA800000, rd(0), rn(1), rm(1), invCond(2, 12))),
		on(P(wr, wr, cond), enc(0x5A800000, rd(0), rn(1), rm(1), invCond(2, 12))),
	)
	t.add("clrex",
		on(P(imm), enc(0xD503305F, immf(0, 4, 8))),
		on(P(), enc(0xD5033F5F)),
	)
	t.add("cls",
		on(P(xr, xr), enc(0xDAC01400, rd(0), rn(1))),
		on(P(wr, wr), enc(0x5AC01400, rd(0), rn(1))),
	)
	t.add("clz",
		on(P(xr, xr), enc(0xDAC01000, rd(0), rn(1))),
		on(P(wr, wr), enc(0x5AC01000, rd(0), rn(1))),
	)
	t.add("cmn",
		on(P(xr, xrArith).Opt(arithShift), enc(0xAB00001F, rn(0), rm(1), shifts(2, 22, 10))),
		on(P(wr, wrArith).Opt(arithShift), enc(0x2B00001F, rn(0), rm(1), shifts(2, 22, 10))),
		on(P(xrOrSP, xrExtend).Opt(extension), enc(0xAB20001F, rn(0), rm(1), extendX(2, 13, 10))),
		on(P(xrOrSP, wr, extend), enc(0xAB20001F, rn(0), rm(1), extendX(2, 13, 10))),
		on(P(wrOrWSP, wrExtend).Opt(extension), enc(0x2B20001F, rn(0), rm(1), extendW(2, 13, 10))),
		on(P(xrOrSP, immShift).Opt(lsl), enc(0xB100001F, rn(0), immf(1, 12, 10), sh(2))),
		on(P(wrOrWSP, immShift).Opt(lsl), enc(0x3100001F, rn(0), immf(1, 12, 10), sh(2))),
	)
	t.add("cmp",
		on(P(xr, xrArith).Opt(arithShift), enc(0xEB00001F, rn(0), rm(1), shifts(2, 22, 10))),
		on(P(wr, wrArith).Opt(arithShift), enc(0x6B00001F, rn(0), rm(1), shifts(2, 22, 10))),
		on(P(xrOrSP, xrExtend).Opt(extension), enc(0xEB20001F, rn(0), rm(1), extendX(2, 13, 10))),
		on(P(xrOrSP, wr, extend), enc(0xEB20001F, rn(0), rm(1), extendW(2, 13, 10))),
		on(P(wrOrWSP, wrExtend).Opt(extension), enc(0x6B20001F, rn(0), rm(1), extendW(2, 13, 10))),
		on(P(xrOrSP, immShift).Opt(lsl), enc(0xF100001F, rn(0), immf(1, 12, 10), sh(2))),
		on(P(wrOrWSP, immShift).Opt(lsl), enc(0x7100001F, rn(0), immf(1, 12, 10), sh(2))),
	)
	t.add("cneg",
		on(P(xr, xr, cond), enc(0xDA800400, rd(0), rn(1), rm(1), invCond(2, 12))),
		on(P(wr, wr, cond), enc(0x5A800400, rd(0), rn(1), rm(1), invCond(2, 12))),
	)
	t.add("crc32b",
		on(P(wr, wr, wr), enc(0x1AC04000, rd(0), rn(1), rm(2))),
	)
	t.add("crc32cb",
		on(P(wr, wr, wr), enc(0x1AC05000, rd(0), rn(1), rm(2))),
	)
	t.add("crc32ch",
		on(P(wr, wr, wr), enc(0x1AC05400, rd(0), rn(1), rm(2))),
	)
	t.add("crc32cw",
		on(P(wr, wr, wr), enc(0x1AC05800, rd(0), rn(1), rm(2))),
	)
	t.add("crc32cx",
		on(P(wr, wr, xr), enc(0x9AC05C00, rd(0), rn(1), rm(2))),
	)
	t.add("crc32h",
		on(P(wr, wr, wr), enc(0x1AC04400, rd(0), rn(1), rm(2))),
	)
	t.add("crc32w",
		on(P(wr, wr, wr), enc(0x1AC04800, rd(0), rn(1), rm(2))),
	)
	t.add("crc32x",
		on(P(wr, wr, xr), enc(0x9AC04C00, rd(0), rn(1), rm(2))),
	)
	t.add("csdb",
		on(P(), enc(0xD503229F)),
	)
	t.add("csel",
		on(P(xr, xr, xr, cond), enc(0x9A800000, rd(0), rn(1), rm(2), condf(3, 12))),
		on(P(wr, wr, wr, cond), enc(0x1A800000, rd(0), rn(1), rm(2), condf(3, 12))),
	)
	t.add("cset",
		on(P(xr, cond), enc(0x9A9F07E0, rd(0), invCond(1, 12))),
		on(P(wr, cond), enc(0x1A9F07E0, rd(0), invCond(1, 12))),
	)
	t.add("csetm",
		on(P(xr, cond), enc(0xDA9F03E0, rd(0), invCond(1, 12))),
		on(P(wr, cond), enc(0x5A9F03E0, rd(0), invCond(1, 12))),
	)
	t.add("csinc",
		on(P(xr, xr, xr, cond), enc(0x9A800400, rd(0), rn(1), rm(2), condf(3, 12))),
		on(P(wr, wr, wr, cond), enc(0x1A800400, rd(0), rn(1), rm(2), condf(3, 12))),
	)
	t.add("csinv",
		on(P(xr, xr, xr, cond), enc(0xDA800000, rd(0), rn(1), rm(2), condf(3, 12))),
		on(P(wr, wr, wr, cond), enc(0x5A800000, rd(0), rn(1), rm(2), condf(3, 12))),
	)
	t.add("csneg",
		on(P(xr, xr, xr, cond), enc(0xDA800400, rd(0), rn(1), rm(2), condf(3, 12))),
		on(P(wr, wr, wr, cond), enc(0x5A800400, rd(0), rn(1), rm(2), condf(3, 12))),
	)
	t.add("dcps1",
		on(P(), enc(0xD4A00001)),
		on(P(imm), enc(0xD4A00001, immf(0, 16, 5))),
	)
	t.add("dcps2",
		on(P(), enc(0xD4A00002)),
		on(P(imm), enc(0xD4A00002, immf(0, 16, 5))),
	)
	t.add("dcps3",
		on(P(), enc(0xD4A00003)),
		on(P(imm), enc(0xD4A00003, immf(0, 16, 5))),
	)
	t.add("drps",
		on(P(), enc(0xD6BF03E0)),
	)
	t.add("eret",
		on(P(), enc(0xD69F03E0)),
	)
	t.add("eretaa",
		on(P(), enc(0xD69F0BFF)),
	)
	t.add("eretab",
		on(P(), enc(0xD69F0FFF)),
	)
	t.add("esb",
		on(P(), enc(0xD503221F)),
	)
	t.add("extr",
		on(P(wr, wr, wr, imm), enc(0x13800000, rd(0), rn(1), rm(2), immf(3, 6, 10))),
		on(P(xr, xr, xr, imm), enc(0x93C00000, rd(0), rn(1), rm(2), immf(3, 6, 10))),
	)
	t.add("hint",
		on(P(imm), enc(0xD503201F, immf(0, 7, 5))),
	)
	t.add("hlt",
		on(P(imm), enc(0xD4400000, immf(0, 16, 5))),
	)
	t.add("hvc",
		on(P(imm), enc(0xD4000002, immf(0, 16, 5))),
	)
	t.add("lsl",
		on(P(wr, wr, wr), enc(0x1AC02000, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02000, rd(0), rn(1), rm(2))),
		on(P(wr, wr, imm), enc(0x53000000, rd(0), rn(1), negMod(2, 32, 16), subFrom(2, 31, 10))),
		on(P(xr, xr, imm), enc(0xD3400000, rd(0), rn(1), negMod(2, 64, 16), subFrom(2, 63, 10))),
	)
	t.add("lslv",
		on(P(wr, wr, wr), enc(0x1AC02000, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02000, rd(0), rn(1), rm(2))),
	)
	t.add("lsr",
		on(P(wr, wr, wr), enc(0x1AC02400, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02400, rd(0), rn(1), rm(2))),
		on(P(wr, wr, imm), enc(0x53007C00, rd(0), rn(1), immf(2, 6, 16))),
		on(P(xr, xr, imm), enc(0xD340FC00, rd(0), rn(1), immf(2, 6, 16))),
	)
	t.add("lsrv",
		on(P(wr, wr, wr), enc(0x1AC02400, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02400, rd(0), rn(1), rm(2))),
	)
	t.add("madd",
		on(P(wr, wr, wr, wr), enc(0x1B000000, rd(0), rn(1), rm(2), ra(3))),
		on(P(xr, xr, xr, xr), enc(0x9B000000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("mneg",
		on(P(wr, wr, wr), enc(0x1B00FC00, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9B00FC00, rd(0), rn(1), rm(2))),
	)
	t.add("mov",
		// MOV (register)
		on(P(wr, wr), enc(0x2A0003E0, rd(0), rm(1))),
		on(P(xr, xr), enc(0xAA0003E0, rd(0), rm(1))),
		// MOV (to/from SP)
		on(P(wrOrWSP, wrOrWSP), enc(0x11000000, rd(0), rn(1))),
		on(P(xrOrSP, xrOrSP), enc(0x91000000, rd(0), rn(1))),
		// Small negative immediates use movn, everything else movz. The
		// bitmask form is not selected.
		on(P(wr, immIn(-0x10000, -1)), enc(0x12800000, rd(0), invImm(1, 16, 5))),
		on(P(xr, immIn(-0x10000, -1)), enc(0x92800000, rd(0), invImm(1, 16, 5))),
		on(P(wr, imm), enc(0x52800000, rd(0), immf(1, 16, 5))),
		on(P(xr, imm), enc(0xD2800000, rd(0), immf(1, 16, 5))),
	)
	t.add("movk",
		on(P(wr, immShift).Opt(lsl), enc(0x72800000, rd(0), immf(1, 16, 5), hw(2))),
		on(P(xr, immShift).Opt(lsl), enc(0xF2800000, rd(0), immf(1, 16, 5), hw(2))),
	)
	t.add("movn",
		on(P(wr, immShift).Opt(lsl), enc(0x12800000, rd(0), immf(1, 16, 5), hw(2))),
		on(P(xr, immShift).Opt(lsl), enc(0x92800000, rd(0), immf(1, 16, 5), hw(2))),
	)
	t.add("movz",
		on(P(wr, immShift).Opt(lsl), enc(0x52800000, rd(0), immf(1, 16, 5), hw(2))),
		on(P(xr, immShift).Opt(lsl), enc(0xD2800000, rd(0), immf(1, 16, 5), hw(2))),
	)
	t.add("msub",
		on(P(wr, wr, wr, wr), enc(0x1B008000, rd(0), rn(1), rm(2), ra(3))),
		on(P(xr, xr, xr, xr), enc(0x9B008000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("mul",
		on(P(wr, wr, wr), enc(0x1B007C00, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9B007C00, rd(0), rn(1), rm(2))),
	)
	t.add("mvn",
		on(P(wr, wrShift).Opt(shift), enc(0x2A2003E0, rd(0), rm(1), shifts(2, 22, 10))),
		on(P(xr, xrShift).Opt(shift), enc(0xAA2003E0, rd(0), rm(1), shifts(2, 22, 10))),
	)
	t.add("neg",
		on(P(wr, wrArith).Opt(arithShift), enc(0x4B0003E0, rd(0), rm(1), shifts(2, 22, 10))),
		on(P(xr, xrArith).Opt(arithShift), enc(0xCB0003E0, rd(0), rm(1), shifts(2, 22, 10))),
	)
	t.add("negs",
		on(P(wr, wrArith).Opt(arithShift), enc(0x6B0003E0, rd(0), rm(1), shifts(2, 22, 10))),
		on(P(xr, xrArith).Opt(arithShift), enc(0xEB0003E0, rd(0), rm(1), shifts(2, 22, 10))),
	)
	t.add("ngc",
		on(P(wr, wr), enc(0x5A0003E0, rd(0), rm(1))),
		on(P(xr, xr), enc(0xDA0003E0, rd(0), rm(1))),
	)
	t.add("ngcs",
		on(P(wr, wr), enc(0x7A0003E0, rd(0), rm(1))),
		on(P(xr, xr), enc(0xFA0003E0, rd(0), rm(1))),
	)
	t.add("nop",
		on(P(), enc(0xD503201F)),
	)
	t.add("orn",
		on(P(wr, wr, wrShift).Opt(shift), enc(0x2A200000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(xr, xr, xrShift).Opt(shift), enc(0xAA200000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
	)
	t.add("orr",
		on(P(wr, wr, wrShift).Opt(shift), enc(0x2A000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(xr, xr, xrShift).Opt(shift), enc(0xAA000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
	)
	t.add("pacda",
		on(P(xr, xrOrSP), enc(0xDAC10800, rd(0), rn(1))),
	)
	t.add("pacdb",
		on(P(xr, xrOrSP), enc(0xDAC10C00, rd(0), rn(1))),
	)
	t.add("pacdza",
		on(P(xr), enc(0xDAC12BE0, rd(0))),
	)
	t.add("pacdzb",
		on(P(xr), enc(0xDAC12FE0, rd(0))),
	)
	t.add("pacga",
		on(P(xr, xr, xrOrSP), enc(0x9AC03000, rd(0), rn(1), rm(2))),
	)
	t.add("pacia",
		on(P(xr, xrOrSP), enc(0xDAC10000, rd(0), rn(1))),
	)
	t.add("pacia1716",
		on(P(), enc(0xD503211F)),
	)
	t.add("paciasp",
		on(P(), enc(0xD503233F)),
	)
	t.add("paciaz",
		on(P(), enc(0xD503231F)),
	)
	t.add("pacib",
		on(P(xr, xrOrSP), enc(0xDAC10400, rd(0), rn(1))),
	)
	t.add("pacib1716",
		on(P(), enc(0xD503215F)),
	)
	t.add("pacibsp",
		on(P(), enc(0xD503237F)),
	)
	t.add("pacibz",
		on(P(), enc(0xD503235F)),
	)
	t.add("paciza",
		on(P(xr), enc(0xDAC123E0, rd(0))),
	)
	t.add("pacizb",
		on(P(xr), enc(0xDAC127E0, rd(0))),
	)
	t.add("pssbb",
		on(P(), enc(0xD503349F)),
	)
	t.add("rbit",
		on(P(wr, wr), enc(0x5AC00000, rd(0), rn(1))),
		on(P(xr, xr), enc(0xDAC00000, rd(0), rn(1))),
	)
	t.add("ret",
		on(P(xr), enc(0xD65F0000, rn(0))),
		on(P(), enc(0xD65F03C0)),
	)
	t.add("retaa",
		on(P(), enc(0xD65F0BFF)),
	)
	t.add("retab",
		on(P(), enc(0xD65F0FFF)),
	)
	t.add("rev",
		on(P(wr, wr), enc(0x5AC00800, rd(0), rn(1))),
		on(P(xr, xr), enc(0xDAC00C00, rd(0), rn(1))),
	)
	t.add("rev16",
		on(P(wr, wr), enc(0x5AC00400, rd(0), rn(1))),
		on(P(xr, xr), enc(0xDAC00400, rd(0), rn(1))),
	)
	t.add("rev32",
		on(P(xr, xr), enc(0xDAC00800, rd(0), rn(1))),
	)
	t.add("rev64",
		on(P(xr, xr), enc(0xDAC00C00, rd(0), rn(1))),
	)
	t.add("rmif",
		on(P(xr, imm, imm), enc(0xBA000400, rn(0), immf(1, 6, 15), immf(2, 4, 0))),
	)
	t.add("ror",
		on(P(wr, wr, imm), enc(0x13800000, rd(0), rn(1), rm(1), immf(2, 6, 10))),
		on(P(xr, xr, imm), enc(0x93C00000, rd(0), rn(1), rm(1), immf(2, 6, 10))),
		on(P(wr, wr, wr), enc(0x1AC02C00, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02C00, rd(0), rn(1), rm(2))),
	)
	t.add("rorv",
		on(P(wr, wr, wr), enc(0x1AC02C00, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC02C00, rd(0), rn(1), rm(2))),
	)
	t.add("sb",
		on(P(), enc(0xD50330FF)),
	)
	t.add("sbc",
		on(P(wr, wr, wr), enc(0x5A000000, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0xDA000000, rd(0), rn(1), rm(2))),
	)
	t.add("sbcs",
		on(P(wr, wr, wr), enc(0x7A000000, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0xFA000000, rd(0), rn(1), rm(2))),
	)
	t.add("sdiv",
		on(P(wr, wr, wr), enc(0x1AC00C00, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC00C00, rd(0), rn(1), rm(2))),
	)
	t.add("setf16",
		on(P(wr), enc(0x3A00480D, rn(0))),
	)
	t.add("setf8",
		on(P(wr), enc(0x3A00080D, rn(0))),
	)
	t.add("sev",
		on(P(), enc(0xD503209F)),
	)
	t.add("sevl",
		on(P(), enc(0xD50320BF)),
	)
	t.add("smaddl",
		on(P(xr, wr, wr, xr), enc(0x9B200000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("smc",
		on(P(imm), enc(0xD4000003, immf(0, 16, 5))),
	)
	t.add("smnegl",
		on(P(xr, wr, wr), enc(0x9B20FC00, rd(0), rn(1), rm(2))),
	)
	t.add("smsubl",
		on(P(xr, wr, wr, xr), enc(0x9B208000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("smulh",
		on(P(xr, xr, xr), enc(0x9B407C00, rd(0), rn(1), rm(2))),
	)
	t.add("smull",
		on(P(xr, wr, wr), enc(0x9B207C00, rd(0), rn(1), rm(2))),
	)
	t.add("ssbb",
		on(P(), enc(0xD503309F)),
	)
	t.add("sub",
		// SUB (shifted register)
		on(P(xr, xr, xrArith).Opt(arithShift), enc(0xCB000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(wr, wr, wrArith).Opt(arithShift), enc(0x4B000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		// SUB (immediate)
		on(P(xrOrSP, xrOrSP, immShift).Opt(lsl), enc(0xD1000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wrOrWSP, wrOrWSP, immShift).Opt(lsl), enc(0x51000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		// SUB (extended register)
		on(P(wrOrWSP, wrOrWSP, wrExtend).Opt(extension), enc(0x4B200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
		on(P(xrOrSP, xrOrSP, xrExtend).Opt(extension), enc(0xCB200000, rd(0), rn(1), rm(2), extendX(3, 13, 10))),
		on(P(xrOrSP, xrOrSP, wrExtend).Opt(extension), enc(0xCB200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
	)
	t.add("subs",
		on(P(xr, xr, xrArith).Opt(arithShift), enc(0xEB000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(wr, wr, wrArith).Opt(arithShift), enc(0x6B000000, rd(0), rn(1), rm(2), shifts(3, 22, 10))),
		on(P(xr, xrOrSP, immShift).Opt(lsl), enc(0xF1000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wr, wrOrWSP, immShift).Opt(lsl), enc(0x71000000, rd(0), rn(1), immf(2, 12, 10), sh(3))),
		on(P(wr, wrOrWSP, wrExtend).Opt(extension), enc(0x6B200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
		on(P(xr, xrOrSP, xrExtend).Opt(extension), enc(0xEB200000, rd(0), rn(1), rm(2), extendX(3, 13, 10))),
		on(P(xr, xrOrSP, wrExtend).Opt(extension), enc(0xEB200000, rd(0), rn(1), rm(2), extendW(3, 13, 10))),
	)
	t.add("svc",
		on(P(imm), enc(0xD4000001, immf(0, 16, 5))),
	)
	t.add("sxtb",
		on(P(wr, wr), enc(0x13001C00, rd(0), rn(1))),
		on(P(xr, wr), enc(0x93401C00, rd(0), rn(1))),
	)
	t.add("sxth",
		on(P(wr, wr), enc(0x13003C00, rd(0), rn(1))),
		on(P(xr, wr), enc(0x93403C00, rd(0), rn(1))),
	)
	t.add("sxtw",
		on(P(xr, wr), enc(0x93407C00, rd(0), rn(1))),
	)
	t.add("udf",
		on(P(imm), enc(0x00000000, immf(0, 16, 0))),
	)
	t.add("udiv",
		on(P(wr, wr, wr), enc(0x1AC00800, rd(0), rn(1), rm(2))),
		on(P(xr, xr, xr), enc(0x9AC00800, rd(0), rn(1), rm(2))),
	)
	t.add("umaddl",
		on(P(xr, wr, wr, xr), enc(0x9BA00000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("umnegl",
		on(P(xr, wr, wr), enc(0x9BA0FC00, rd(0), rn(1), rm(2))),
	)
	t.add("umsubl",
		on(P(xr, wr, wr, xr), enc(0x9BA08000, rd(0), rn(1), rm(2), ra(3))),
	)
	t.add("umulh",
		on(P(xr, xr, xr), enc(0x9BC07C00, rd(0), rn(1), rm(2))),
	)
	t.add("umull",
		on(P(xr, wr, wr), enc(0x9BA07C00, rd(0), rn(1), rm(2))),
	)
	t.add("uxtb",
		on(P(wr, wr), enc(0x53001C00, rd(0), rn(1))),
	)
	t.add("uxth",
		on(P(wr, wr), enc(0x53003C00, rd(0), rn(1))),
	)
	t.add("wfe",
		on(P(), enc(0xD503205F)),
	)
	t.add("wfi",
		on(P(), enc(0xD503207F)),
	)
	t.add("xpacd",
		on(P(xr), enc(0xDAC147E0, rd(0))),
	)
	t.add("xpaci",
		on(P(xr), enc(0xDAC143E0, rd(0))),
	)
	t.add("xpaclri",
		on(P(), enc(0xD50320FF)),
	)
	t.add("yield",
		on(P(), enc(0xD503203F)),
	)
}
