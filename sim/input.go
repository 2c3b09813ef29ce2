package sim

// Input is one frame's sample from the external input provider. CameraYaw is
// the camera's horizontal orientation in radians; the player controller
// projects its movement basis from it.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// Jump is the edge-triggered press, not the held state. It arms the
	// jump buffer.
	Jump   bool
	Sprint bool

	CameraYaw float64
}
