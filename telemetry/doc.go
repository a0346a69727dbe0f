// Package telemetry records simulation signals into named channels.
//
// A Provider hands out ChannelID handles at registration time; the hot loop
// then logs scalar samples by handle with no allocation and no locking. Two
// providers are included: Nop, which discards everything, and MemoryRecorder,
// which keeps a fixed ring buffer of recent samples per channel.
//
// Code that should stay instrumentable without paying for it takes a Provider
// and is handed Nop in production builds:
//
//	func step(tel telemetry.Provider, speedID telemetry.ChannelID, dt float64) {
//		speed := integrate(dt)
//		tel.Log(speedID, speed)
//	}
package telemetry
