package theme

import "testing"

func TestRefreshDark(t *testing.T) {
	p := Refresh("#64ffda", Dark)

	if p.Node.A != 0.6 {
		t.Errorf("Expected node alpha 0.6, got %v", p.Node.A)
	}
	if p.Edge.A != 0.15 {
		t.Errorf("Expected edge alpha 0.15, got %v", p.Edge.A)
	}
	if p.Packet.A != 1 {
		t.Errorf("Expected opaque packet, got %v", p.Packet.A)
	}
	for _, c := range []Color{p.Packet, p.Node, p.Edge} {
		if c.R != 100 || c.G != 255 || c.B != 218 {
			t.Errorf("Expected RGB (100,255,218), got (%d,%d,%d)", c.R, c.G, c.B)
		}
	}
}

func TestRefreshLight(t *testing.T) {
	p := Refresh("#64ffda", Light)

	if p.Node.A != 0.3 {
		t.Errorf("Expected node alpha 0.3, got %v", p.Node.A)
	}
	if p.Edge.A != 0.1 {
		t.Errorf("Expected edge alpha 0.1, got %v", p.Edge.A)
	}
}

func TestRefreshFallback(t *testing.T) {
	for _, in := range []string{"notacolor", "", "#12345", "#ggg", "rgb(1,2,3)", "#1234567"} {
		p := Refresh(in, Dark)
		if p.Node.R != 100 || p.Node.G != 255 || p.Node.B != 218 {
			t.Errorf("%q: expected fallback RGB, got (%d,%d,%d)", in, p.Node.R, p.Node.G, p.Node.B)
		}
	}
}

func TestParseHexShorthand(t *testing.T) {
	r, g, b, ok := ParseHex("#6fd")
	if !ok {
		t.Fatal("Expected #6fd to parse")
	}
	if r != 102 || g != 255 || b != 221 {
		t.Errorf("Expected (102,255,221), got (%d,%d,%d)", r, g, b)
	}
}

func TestParseHexTrimsSpace(t *testing.T) {
	r, g, b, ok := ParseHex("  #0A9396 ")
	if !ok || r != 0x0a || g != 0x93 || b != 0x96 {
		t.Errorf("Unexpected parse: (%d,%d,%d) ok=%v", r, g, b, ok)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{R: 1, G: 2, B: 3, A: 0.6}.NRGBA()
	if c.A != 153 {
		t.Errorf("Expected alpha byte 153, got %d", c.A)
	}
}
