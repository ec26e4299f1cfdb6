package script

import "testing"

func TestDeviceTracesOnlyWhenEnabled(t *testing.T) {
	d := New()
	defer d.Close()

	if err := d.LoadString(`
last_port = -1
last_value = -1
function on_deo(port, value)
  last_port = port
  last_value = value
end
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	// Trace is off by default: a DEO must not reach on_deo yet.
	d.DEO(nil, 0x22, 99, false)
	last := d.state.GetGlobal("last_port")
	if last.String() != "-1" {
		t.Fatalf("last_port = %v before trace enabled, want -1", last)
	}

	d.DEO(nil, 0xb1, 1, false) // scrTrace on
	d.DEO(nil, 0x22, 99, false)

	port := d.state.GetGlobal("last_port")
	value := d.state.GetGlobal("last_value")
	if port.String() != "34" { // 0x22 == 34
		t.Fatalf("last_port = %v, want 34", port)
	}
	if value.String() != "99" {
		t.Fatalf("last_value = %v, want 99", value)
	}
}

func TestDeviceIgnoresMissingOnDeoHandler(t *testing.T) {
	d := New()
	defer d.Close()

	d.DEO(nil, 0xb1, 1, false) // trace on, no on_deo defined
	if ok := d.DEO(nil, 0x22, 1, false); !ok {
		t.Fatalf("DEO returned false, want true (always-continue)")
	}
}
