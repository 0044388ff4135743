package secp

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Curve names one entry of the catalog.
type Curve string

// Recommended curve parameters from SEC 2 (https://www.secg.org/sec2-v2.pdf).
const (
	SECP112R1 Curve = "SECP112R1"
	SECP112R2 Curve = "SECP112R2"
	SECP128R1 Curve = "SECP128R1"
	SECP128R2 Curve = "SECP128R2"
	SECP192K1 Curve = "SECP192K1"
	SECP192R1 Curve = "SECP192R1"
	SECP224K1 Curve = "SECP224K1"
	SECP224R1 Curve = "SECP224R1"
	SECP256K1 Curve = "SECP256K1"
	SECP256R1 Curve = "SECP256R1"
	SECP384R1 Curve = "SECP384R1"
	SECP521R1 Curve = "SECP521R1"

	SECT113R1 Curve = "SECT113R1"
	SECT163K1 Curve = "SECT163K1"
	SECT163R1 Curve = "SECT163R1"
	SECT163R2 Curve = "SECT163R2"
	SECT233K1 Curve = "SECT233K1"
	SECT233R1 Curve = "SECT233R1"
	SECT239K1 Curve = "SECT239K1"
	SECT283K1 Curve = "SECT283K1"
	SECT283R1 Curve = "SECT283R1"
	SECT409K1 Curve = "SECT409K1"
	SECT409R1 Curve = "SECT409R1"
	SECT571K1 Curve = "SECT571K1"
)

// ErrUnknownCurve is returned by Lookup for names outside the catalog.
var ErrUnknownCurve = errors.New("unknown curve")

// Params returns the domain parameters of c. It panics if c is not one of the
// catalog constants.
func (c Curve) Params() *DomainParameters {
	d, ok := load().byName[c]
	if !ok {
		panic(fmt.Sprintf("secp: curve %q is not in the catalog", string(c)))
	}
	return d
}

// String returns the curve name.
func (c Curve) String() string { return string(c) }

// Lookup resolves a curve name, ignoring case and surrounding whitespace.
func Lookup(name string) (*DomainParameters, error) {
	key := Curve(strings.ToUpper(strings.TrimSpace(name)))
	d, ok := load().byName[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return d, nil
}

// Curves returns every catalog name, prime-field curves first, each group in
// ascending size.
func Curves() []Curve {
	c := load()
	out := make([]Curve, len(c.names))
	copy(out, c.names)
	return out
}

type catalog struct {
	names  []Curve
	byName map[Curve]*DomainParameters
}

var (
	catalogOnce sync.Once
	theCatalog  *catalog
)

// load parses the table on first use. A malformed table is a defect in this
// package, so it panics instead of returning an error.
func load() *catalog {
	catalogOnce.Do(func() {
		c, err := buildCatalog(entries)
		if err != nil {
			panic("secp: malformed catalog: " + err.Error())
		}
		theCatalog = c
	})
	return theCatalog
}

func buildCatalog(src []entry) (*catalog, error) {
	c := &catalog{
		names:  make([]Curve, 0, len(src)),
		byName: make(map[Curve]*DomainParameters, len(src)),
	}
	for _, e := range src {
		if _, dup := c.byName[e.name]; dup {
			return nil, fmt.Errorf("duplicate curve %s", e.name)
		}
		d, err := e.build()
		if err != nil {
			return nil, err
		}
		c.names = append(c.names, e.name)
		c.byName[e.name] = d
	}
	return c, nil
}

var entries = []entry{
	{
		name:  SECP112R1,
		kind:  Prime,
		field: "DB7C2ABF 62E35E66 8076BEAD 208B",
		a:     "DB7C2ABF 62E35E66 8076BEAD 2088",
		b:     "659EF8BA 043916EE DE891170 2B22",
		gx:    "09487239 995A5EE7 6B55F9C2 F098",
		gy:    "A89CE5AF 8724C0A2 3E0E0FF7 7500",
		n:     "DB7C2ABF 62E35E76 28DFAC65 61C5",
		h:     "01",
	},
	{
		name:  SECP112R2,
		kind:  Prime,
		field: "DB7C2ABF 62E35E66 8076BEAD 208B",
		a:     "6127C24C 05F38A0A AAF65C0E F02C",
		b:     "51DEF181 5DB5ED74 FCC34C85 D709",
		gx:    "4BA30AB5 E892B4E1 649DD092 8643",
		gy:    "ADCD46F5 882E3747 DEF36E95 6E97",
		n:     "36DF0AAF D8B8D759 7CA10520 D04B",
		h:     "04",
	},
	{
		name:  SECP128R1,
		kind:  Prime,
		field: "FFFFFFFD FFFFFFFF FFFFFFFF FFFFFFFF",
		a:     "FFFFFFFD FFFFFFFF FFFFFFFF FFFFFFFC",
		b:     "E87579C1 1079F43D D824993C 2CEE5ED3",
		gx:    "161FF752 8B899B2D 0C28607C A52C5B86",
		gy:    "CF5AC839 5BAFEB13 C02DA292 DDED7A83",
		n:     "FFFFFFFE 00000000 75A30D1B 9038A115",
		h:     "01",
	},
	{
		name:  SECP128R2,
		kind:  Prime,
		field: "FFFFFFFD FFFFFFFF FFFFFFFF FFFFFFFF",
		a:     "D6031998 D1B3BBFE BF59CC9B BFF9AEE1",
		b:     "5EEEFCA3 80D02919 DC2C6558 BB6D8A5D",
		gx:    "7B6AA5D8 5E572983 E6FB32A7 CDEBC140",
		gy:    "27B6916A 894D3AEE 7106FE80 5FC34B44",
		n:     "3FFFFFFF 7FFFFFFF BE002472 0613B5A3",
		h:     "04",
	},
	{
		name:  SECP192K1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFEE37",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000003",
		gx:    "DB4FF10E C057E9AE 26B07D02 80B7F434 1DA5D1B1 EAE06C7D",
		gy:    "9B2F2F6D 9C5628A7 844163D0 15BE8634 4082AA88 D95E2F9D",
		n:     "FFFFFFFF FFFFFFFF FFFFFFFE 26F2FC17 0F69466A 74DEFD8D",
		h:     "01",
	},
	{
		name:  SECP192R1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF FFFFFFFF",
		a:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF FFFFFFFC",
		b:     "64210519 E59C80E7 0FA7E9AB 72243049 FEB8DEEC C146B9B1",
		gx:    "188DA80E B03090F6 7CBF20EB 43A18800 F4FF0AFD 82FF1012",
		gy:    "07192B95 FFC8DA78 631011ED 6B24CDD5 73F977A1 1E794811",
		n:     "FFFFFFFF FFFFFFFF FFFFFFFF 99DEF836 146BC9B1 B4D22831",
		h:     "01",
	},
	{
		name:  SECP224K1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFE56D",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000000 00000005",
		gx:    "A1455B33 4DF099DF 30FC28A1 69A467E9 E47075A9 0F7E650E B6B7A45C",
		gy:    "7E089FED 7FBA3442 82CAFBD6 F7E319F7 C0B0BD59 E2CA4BDB 556D61A5",
		n:     "01 00000000 00000000 00000000 0001DCE8 D2EC6184 CAF0A971 769FB1F7",
		h:     "01",
	},
	{
		name:  SECP224R1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF 00000000 00000000 00000001",
		a:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF FFFFFFFF FFFFFFFE",
		b:     "B4050A85 0C04B3AB F5413256 5044B0B7 D7BFD8BA 270B3943 2355FFB4",
		gx:    "B70E0CBD 6BB4BF7F 321390B9 4A03C1D3 56C21122 343280D6 115C1D21",
		gy:    "BD376388 B5F723FB 4C22DFE6 CD4375A0 5A074764 44D58199 85007E34",
		n:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFF16A2 E0B8F03E 13DD2945 5C5C2A3D",
		h:     "01",
	},
	{
		name:  SECP256K1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFC2F",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000007",
		gx:    "79BE667E F9DCBBAC 55A06295 CE870B07 029BFCDB 2DCE28D9 59F2815B 16F81798",
		gy:    "483ADA77 26A3C465 5DA4FBFC 0E1108A8 FD17B448 A6855419 9C47D08F FB10D4B8",
		n:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE BAAEDCE6 AF48A03B BFD25E8C D0364141",
		h:     "01",
	},
	{
		name:  SECP256R1,
		kind:  Prime,
		field: "FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFF",
		a:     "FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFC",
		b:     "5AC635D8 AA3A93E7 B3EBBD55 769886BC 651D06B0 CC53B0F6 3BCE3C3E 27D2604B",
		gx:    "6B17D1F2 E12C4247 F8BCE6E5 63A440F2 77037D81 2DEB33A0 F4A13945 D898C296",
		gy:    "4FE342E2 FE1A7F9B 8EE7EB4A 7C0F9E16 2BCE3357 6B315ECE CBB64068 37BF51F5",
		n:     "FFFFFFFF 00000000 FFFFFFFF FFFFFFFF BCE6FAAD A7179E84 F3B9CAC2 FC632551",
		h:     "01",
	},
	{
		name:  SECP384R1,
		kind:  Prime,
		field: "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF 00000000 00000000 FFFFFFFF",
		a:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF 00000000 00000000 FFFFFFFC",
		b:     "B3312FA7 E23EE7E4 988E056B E3F82D19 181D9C6E FE814112 0314088F 5013875A C656398D 8A2ED19D 2A85C8ED D3EC2AEF",
		gx:    "AA87CA22 BE8B0537 8EB1C71E F320AD74 6E1D3B62 8BA79B98 59F741E0 82542A38 5502F25D BF55296C 3A545E38 72760AB7",
		gy:    "3617DE4A 96262C6F 5D9E98BF 9292DC29 F8F41DBD 289A147C E9DA3113 B5F0B8C0 0A60B1CE 1D7E819D 7A431D7C 90EA0E5F",
		n:     "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF C7634D81 F4372DDF 581A0DB2 48B0A77A ECEC196A CCC52973",
		h:     "01",
	},
	{
		name:  SECP521R1,
		kind:  Prime,
		field: "01FF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF",
		a:     "01FF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFC",
		b:     "0051 953EB961 8E1C9A1F 929A21A0 B68540EE A2DA725B 99B315F3 B8B48991 8EF109E1 56193951 EC7E937B 1652C0BD 3BB1BF07 3573DF88 3D2C34F1 EF451FD4 6B503F00",
		gx:    "00C6 858E06B7 0404E9CD 9E3ECB66 2395B442 9C648139 053FB521 F828AF60 6B4D3DBA A14B5E77 EFE75928 FE1DC127 A2FFA8DE 3348B3C1 856A429B F97E7E31 C2E5BD66",
		gy:    "0118 39296A78 9A3BC004 5C8A5FB4 2C7D1BD9 98F54449 579B4468 17AFBD17 273E662C 97EE7299 5EF42640 C550B901 3FAD0761 353C7086 A272C240 88BE9476 9FD16650",
		n:     "01FF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFA 51868783 BF2F966B 7FCC0148 F709A5D0 3BB5C9B8 899C47AE BB6FB71E 91386409",
		h:     "01",
	},
	{
		name:  SECT113R1,
		kind:  BinaryExtension,
		field: "x^113 x^9 1",
		a:     "00308825 0CA6E7C7 FE649CE8 5820F7",
		b:     "00E8BEE4 D3E22607 44188BE0 E9C723",
		gx:    "009D7361 6F35F4AB 1407D735 62C10F",
		gy:    "00A52830 277958EE 84D1315E D31886",
		n:     "01000000 00000000 D9CCEC8A 39E56F",
		h:     "02",
	},
	{
		name:  SECT163K1,
		kind:  BinaryExtension,
		field: "x^163 x^7 x^6 x^3 1",
		a:     "00 00000000 00000000 00000000 00000000 00000001",
		b:     "00 00000000 00000000 00000000 00000000 00000001",
		gx:    "02 FE13C053 7BBC11AC AA07D793 DE4E6D5E 5C94EEE8",
		gy:    "02 89070FB0 5D38FF58 321F2E80 0536D538 CCDAA3D9",
		n:     "04 00000000 00000000 00020108 A2E0CC0D 99F8A5EF",
		h:     "02",
	},
	{
		name:  SECT163R1,
		kind:  BinaryExtension,
		field: "x^163 x^7 x^6 x^3 1",
		a:     "07 B6882CAA EFA84F95 54FF8428 BD88E246 D2782AE2",
		b:     "07 13612DCD DCB40AAB 946BDA29 CA91F73A F958AFD9",
		gx:    "03 69979697 AB438977 89566789 567F787A 7876A654",
		gy:    "00 435EDB42 EFAFB298 9D51FEFC E3C80988 F41FF883",
		n:     "03 FFFFFFFF FFFFFFFF FFFF48AA B689C29C A710279B",
		h:     "02",
	},
	{
		name:  SECT163R2,
		kind:  BinaryExtension,
		field: "x^163 x^7 x^6 x^3 1",
		a:     "00 00000000 00000000 00000000 00000000 00000001",
		b:     "02 0A601907 B8C953CA 1481EB10 512F7874 4A3205FD",
		gx:    "03 F0EBA162 86A2D57E A0991168 D4994637 E8343E36",
		gy:    "00 D51FBC6C 71A0094F A2CDD545 B11C5C0C 797324F1",
		n:     "04 00000000 00000000 000292FE 77E70C12 A4234C33",
		h:     "02",
	},
	{
		name:  SECT233K1,
		kind:  BinaryExtension,
		field: "x^233 x^74 1",
		a:     "0000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "0000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		gx:    "0172 32BA853A 7E731AF1 29F22FF4 149563A4 19C26BF5 0A4C9D6E EFAD6126",
		gy:    "01DB 537DECE8 19B7F70F 555A67C4 27A8CD9B F18AEB9B 56E0C110 56FAE6A3",
		n:     "80 00000000 00000000 00000000 00069D5B B915BCD4 6EFB1AD5 F173ABDF",
		h:     "04",
	},
	{
		name:  SECT233R1,
		kind:  BinaryExtension,
		field: "x^233 x^74 1",
		a:     "0000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		b:     "0066 647EDE6C 332C7F8C 0923BB58 213B333B 20E9CE42 81FE115F 7D8F90AD",
		gx:    "00FA C9DFCBAC 8313BB21 39F1BB75 5FEF65BC 391F8B36 F8F8EB73 71FD558B",
		gy:    "0100 6A08A419 03350678 E58528BE BF8A0BEF F867A7CA 36716F7E 01F81052",
		n:     "0100 00000000 00000000 00000000 0013E974 E72F8A69 22031D26 03CFE0D7",
		h:     "02",
	},
	{
		name:  SECT239K1,
		kind:  BinaryExtension,
		field: "x^239 x^158 1",
		a:     "0000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "0000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		gx:    "29A0 B6A887A9 83E97309 88A68727 A8B2D126 C44CC2CC 7B2A6555 193035DC",
		gy:    "7631 0804F12E 549BDB01 1C103089 E73510AC B275FC31 2A5DC6B7 6553F0CA",
		n:     "2000 00000000 00000000 00000000 005A79FE C67CB6E9 1F1C1DA8 00E478A5",
		h:     "04",
	},
	{
		name:  SECT283K1,
		kind:  BinaryExtension,
		field: "x^283 x^12 x^7 x^5 1",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		gx:    "0503213F 78CA4488 3F1A3B81 62F188E5 53CD265F 23C1567A 16876913 B0C2AC24 58492836",
		gy:    "01CCDA38 0F1C9E31 8D90F95D 07E5426F E87E45C0 E8184698 E4596236 4E341161 77DD2259",
		n:     "01FFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFE9AE 2ED07577 265DFF7F 94451E06 1E163C61",
		h:     "04",
	},
	{
		name:  SECT283R1,
		kind:  BinaryExtension,
		field: "x^283 x^12 x^7 x^5 1",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		b:     "027B680A C8B8596D A5A4AF8A 19A0303F CA97FD76 45309FA2 A581485A F6263E31 3B79A2F5",
		gx:    "05F93925 8DB7DD90 E1934F8C 70B0DFEC 2EED25B8 557EAC9C 80E2E198 F8CDBECD 86B12053",
		gy:    "03676854 FE24141C B98FE6D4 B20D02B4 516FF702 350EDDB0 826779C8 13F0DF45 BE8112F4",
		n:     "03FFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFEF90 399660FC 938A9016 5B042A7C EFADB307",
		h:     "02",
	},
	{
		name:  SECT409K1,
		kind:  BinaryExtension,
		field: "x^409 x^87 1",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		gx:    "0060F05F 658F49C1 AD3AB189 0F718421 0EFD0987 E307C84C 27ACCFB8 F9F67CC2 C460189E B5AAAA62 EE222EB1 B35540CF E9023746",
		gy:    "01E36905 0B7C4E42 ACBA1DAC BF04299C 3460782F 918EA427 E6325165 E9EA10E3 DA5F6C42 E9C55215 AA9CA27A 5863EC48 D8E0286B",
		n:     "7FFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFE5F 83B2D4EA 20400EC4 557D5ED3 E3E7CA5B 4B5C83B8 E01E5FCF",
		h:     "04",
	},
	{
		name:  SECT409R1,
		kind:  BinaryExtension,
		field: "x^409 x^87 1",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		b:     "0021A5C2 C8EE9FEB 5C4B9A75 3B7B476B 7FD6422E F1F3DD67 4761FA99 D6AC27C8 A9A197B2 72822F6C D57A55AA 4F50AE31 7B13545F",
		gx:    "015D4860 D088DDB3 496B0C60 64756260 441CDE4A F1771D4D B01FFE5B 34E59703 DC255A86 8A118051 5603AEAB 60794E54 BB7996A7",
		gy:    "0061B1CF AB6BE5F3 2BBFA783 24ED106A 7636B9C5 A7BD198D 0158AA4F 5488D08F 38514F1F DF4B4F40 D2181B36 81C364BA 0273C706",
		n:     "01000000 00000000 00000000 00000000 00000000 00000000 000001E2 AAD6A612 F33307BE 5FA47C3C 9E052F83 8164CD37 D9A21173",
		h:     "02",
	},
	{
		name:  SECT571K1,
		kind:  BinaryExtension,
		field: "x^571 x^10 x^5 x^2 1",
		a:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:     "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		gx:    "026EB7A8 59923FBC 82189631 F8103FE4 AC9CA297 0012D5D4 60248048 01841CA4 43709584 93B205E6 47DA304D B4CEB08C BBD1BA39 494776FB 988B4717 4DCA88C7 E2945283 A01C8972",
		gy:    "0349DC80 7F4FBF37 4F4AEADE 3BCA9531 4DD58CEC 9F307A54 FFC61EFC 006D8A2C 9D4979C0 AC44AEA7 4FBEBBB9 F772AEDC B620B01A 7BA7AF1B 320430C8 591984F6 01CD4C14 3EF1C7A3",
		n:     "02000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000 131850E1 F19A63E4 B391A8DB 917F4138 B630D84B E5D63938 1E91DEB4 5CFE778F 637C1001",
		h:     "04",
	},
}
