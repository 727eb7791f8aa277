// Package facade hides three smart-home devices behind two scenes,
// LeaveHome and ArriveHome, each driving the devices in a fixed order.
package facade

import (
	"fmt"
	"io"
)

// Thermostat targets, in degrees.
const (
	AwayTemperature = 18
	HomeTemperature = 22
)

// Light can be switched on and off.
type Light struct{ out io.Writer }

func (l *Light) On() { fmt.Fprintln(l.out, "Light is on.") }
func (l *Light) Off() { fmt.Fprintln(l.out, "Light is off.") }

// Thermostat holds a target temperature.
type Thermostat struct{ out io.Writer }

// SetTemperature reports the new target.
func (t *Thermostat) SetTemperature(degrees int) {
	fmt.Fprintf(t.out, "Thermostat is set to %d degrees.\n", degrees)
}

// SecuritySystem can be armed and disarmed.
type SecuritySystem struct{ out io.Writer }

func (s *SecuritySystem) Activate() { fmt.Fprintln(s.out, "Security system activated.") }
func (s *SecuritySystem) Deactivate() { fmt.Fprintln(s.out, "Security system disactivated.") }

// SmartHome is the facade over the three devices.
type SmartHome struct {
	out        io.Writer
	light      *Light
	thermostat *Thermostat
	security   *SecuritySystem
}

// NewSmartHome wires a SmartHome whose devices all write to w.
func NewSmartHome(w io.Writer) *SmartHome {
	return &SmartHome{
		out:        w,
		light:      &Light{out: w},
		thermostat: &Thermostat{out: w},
		security:   &SecuritySystem{out: w},
	}
}

// LeaveHome turns the light off, lowers the thermostat, and arms security.
func (h *SmartHome) LeaveHome() {
	fmt.Fprintln(h.out, "Leaving home...")
	h.light.Off()
	h.thermostat.SetTemperature(AwayTemperature)
	h.security.Activate()
}

// ArriveHome turns the light on, raises the thermostat, and disarms security.
func (h *SmartHome) ArriveHome() {
	fmt.Fprintln(h.out, "Arriving home...")
	h.light.On()
	h.thermostat.SetTemperature(HomeTemperature)
	h.security.Deactivate()
}

// Demo leaves and then arrives home.
func Demo(w io.Writer) error {
	home := NewSmartHome(w)
	home.LeaveHome()
	home.ArriveHome()

	return nil
}
