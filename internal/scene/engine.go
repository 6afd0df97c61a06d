package scene

// Engine is the narrow seam to the external 3D renderer. The core hands it
// a composed graph and gets a camera handle back; rasterization, shading
// and input handling all live on the other side of this interface.
type Engine interface {
	Submit(Graph) error
	Camera() CameraHandle
}

// CameraHandle exposes the one camera operation the UI needs.
type CameraHandle interface {
	// Reset returns the orbit camera to the framing Compose computed.
	Reset()
}
