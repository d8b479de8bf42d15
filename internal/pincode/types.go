package pincode

// PostOffice is a single delivery branch as returned by the postal API.
type PostOffice struct {
	Name           string `json:"Name"`
	Description    string `json:"Description,omitempty"`
	BranchType     string `json:"BranchType"`
	DeliveryStatus string `json:"DeliveryStatus"`
	Circle         string `json:"Circle,omitempty"`
	District       string `json:"District"`
	Division       string `json:"Division,omitempty"`
	Region         string `json:"Region,omitempty"`
	Block          string `json:"Block,omitempty"`
	State          string `json:"State"`
	Country        string `json:"Country,omitempty"`
	Pincode        string `json:"Pincode,omitempty"`
}

// Response mirrors one element of the API's top-level array.
type Response struct {
	Message    string       `json:"Message"`
	Status     string       `json:"Status"`
	PostOffice []PostOffice `json:"PostOffice"`
}

const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Clone returns a copy of offices backed by a new array.
func Clone(offices []PostOffice) []PostOffice {
	if offices == nil {
		return nil
	}
	dup := make([]PostOffice, len(offices))
	copy(dup, offices)
	return dup
}
