package har

// HARHeader represents an HTTP header in a HAR file
type HARHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARPostData represents POST data in a HAR file
type HARPostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// HARRequest represents an HTTP request in a HAR file
type HARRequest struct {
	Method      string       `json:"method"`
	URL         string       `json:"url"`
	HTTPVersion string       `json:"httpVersion"`
	Headers     []HARHeader  `json:"headers"`
	PostData    *HARPostData `json:"postData"`
}

// HARContent represents response content in a HAR file
type HARContent struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding"`
}

// HARResponse represents an HTTP response in a HAR file.
// A zero Status means no response was received.
type HARResponse struct {
	Status      int         `json:"status"`
	StatusText  string      `json:"statusText"`
	HTTPVersion string      `json:"httpVersion"`
	Headers     []HARHeader `json:"headers"`
	Content     HARContent  `json:"content"`
}

// HAREntry represents a single HTTP transaction in a HAR file.
// Request and Response are nil when the capture omits them.
type HAREntry struct {
	StartedDateTime string       `json:"startedDateTime"`
	Time            float64      `json:"time"`
	Request         *HARRequest  `json:"request"`
	Response        *HARResponse `json:"response"`
}
