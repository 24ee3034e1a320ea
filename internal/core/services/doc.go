// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services do no I/O of their own; the only outbound call goes
// through the driven.CountrySource port.
package services
