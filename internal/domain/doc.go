// Package domain evaluates surface condensation and mold-growth risk for a
// room from four temperature and humidity readings.
//
// # Inputs
//
//	T   room air temperature, °C
//	phi room relative humidity, % (expected 0–100, not guaranteed)
//	Tw  coldest interior surface temperature, °C (window reveal, wall corner)
//	Ta  outdoor temperature, °C
//
// Readings arrive as text typed by a person or forwarded by a sensor gateway.
// A comma is accepted as the decimal separator ("20,5" = 20.5). Empty,
// unparseable or non-finite values make the input incomplete.
//
// # Saturation vapor pressure
//
// Magnus approximation over water, in hPa:
//
//	e_s(t) = 6.112 · exp(17.62·t / (243.12 + t))
//
// No range clamp is applied. The formula is calibrated for roughly −45 °C to
// +60 °C; outside that band the result is still returned as computed.
//
// # Surface relative humidity
//
// The vapor pressure of the room air is carried unchanged to the surface:
//
//	e     = clamp(phi, 0, 100)/100 · e_s(T)
//	phi_w = e / e_s(Tw) · 100
//
// phi_w is NOT clamped. Values above 100 mean the surface is below the dew
// point. Risk tiers (half-open, first match wins):
//
//	phi_w < 65    unproblematic
//	phi_w < 70    critical
//	phi_w < 100   mold risk
//	otherwise     condensation
//
// # SIA 180 humidity limit
//
// Maximum permissible indoor vapor pressure as an empirical quadratic in the
// outdoor temperature, in Pa:
//
//	p_max   = 0.3744·Ta² + 27.607·Ta + 1112.2
//	phi_max = 100 · p_max / (e_s(T)·100)
//
// The room is compliant when the raw (unclamped) measured phi ≤ phi_max. No
// tolerance is applied.
//
// # Fault attribution
//
// Evaluated in order, first match wins:
//
//  1. Tw < 13 °C: building and occupant when phi > phi_max, else building.
//  2. compliant, phi < 70 and phi_w > 70: building.
//  3. phi > phi_max: occupant.
//  4. otherwise mixed or unclear.
//
// # Absent results
//
// [Evaluate] never fails as a whole. Each of the three sections is present or
// absent on its own; an absent section carries the reason as an [Issue]
// wrapping [ErrIncompleteInput] or [ErrDegenerateArithmetic]. A surface
// colder than about −243 °C drives e_s towards zero; such a division is
// reported as degenerate rather than classified.
package domain
