package config

import "image/color"

const (
	// --- Nodes ---
	NodeDensity     = 20000.0 // canvas px² per node
	NodeRadius      = 3.0
	MaxNodeSpeed    = 0.8 // velocity components are drawn from ±MaxNodeSpeed/2
	RepulsionRadius = 150.0
	RepulsionForce  = 5.0

	// --- Proximity Graph ---
	ProximityThreshold = 150.0 // exclusive
	EdgeWidth          = 1.0

	// --- Packets ---
	PacketCount      = 15
	PacketRadius     = 2.5
	PacketGlow       = 5.0
	PacketSpeedMin   = 0.005
	PacketSpeedRange = 0.01

	// --- Theme Alphas ---
	NodeAlphaDark  = 0.6
	NodeAlphaLight = 0.3
	EdgeAlphaDark  = 0.15
	EdgeAlphaLight = 0.1

	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Network Topology"
	DefaultTermFPS      = 30

	// --- UI ---
	ButtonWidth  = 60.0
	ButtonHeight = 30.0
	ButtonMargin = 10.0
)

var (
	// --- Colors ---
	ColorFallback        = color.RGBA{100, 255, 218, 255}
	ColorBackgroundDark  = color.RGBA{10, 25, 47, 255}
	ColorBackgroundLight = color.RGBA{245, 247, 250, 255}
	ColorButtonDark      = color.RGBA{60, 60, 70, 200}
	ColorButtonLight     = color.RGBA{210, 214, 222, 220}
	ColorTextDark        = color.RGBA{204, 214, 246, 255}
	ColorTextLight       = color.RGBA{40, 44, 52, 255}
	ColorDebugPanel      = color.RGBA{40, 40, 40, 220}
	ColorDebugText       = color.RGBA{255, 200, 50, 255}
)
