package physics

// MovementProfile holds per-frame movement tuning
type MovementProfile struct {
	Speed   float64
	Damping float64
}

// BodyProfile holds viewpoint dimensions
type BodyProfile struct {
	EyeHeight float64
	HalfWidth float64
	Height    float64
}

// DefaultMovement matches the walkthrough feel: 0.12 per frame, 8% decay
var DefaultMovement = MovementProfile{
	Speed:   0.12,
	Damping: 0.08,
}

// DefaultBody is a 0.6 wide, 1.7 tall standing viewer with eyes at 1.6
var DefaultBody = BodyProfile{
	EyeHeight: 1.6,
	HalfWidth: 0.3,
	Height:    1.7,
}

// DefaultRoom is the walkable interval of the reception lobby
var DefaultRoom = Room{
	MinX: -11, MaxX: 11,
	MinZ: -9, MaxZ: 9,
}
