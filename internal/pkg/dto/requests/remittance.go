package requests

// PostRemittance carries one raw 835 document. Filename is optional and only
// used to name the archived copy.
type PostRemittance struct {
	Document string `json:"document" validate:"required"`
	Filename string `json:"filename"`
}
