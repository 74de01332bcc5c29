package domain

// URLEntry is a stored mapping from a short key to the URL it redirects to.
// Entries are never updated once created.
type URLEntry struct {
	Key      string `json:"key"`
	Original string `json:"original"`
}

// ShortLink is what a successful submission hands back to the caller.
type ShortLink struct {
	Key      string `json:"key"`
	Original string `json:"original"`
	Path     string `json:"path"`
	URL      string `json:"short_url"`
}

// IndexView is the model behind the single page of the service. Either field
// may be empty.
type IndexView struct {
	Link  *ShortLink `json:"link,omitempty"`
	Error string     `json:"error,omitempty"`
}
