package crossref

// worksResponse is the wrapper around a /works query result.
type worksResponse struct {
	Message struct {
		Items []workItem `json:"items"`
	} `json:"message"`
}

// workItem is a single Crossref work record. Only the fields used for
// candidate matching are mapped.
type workItem struct {
	DOI            string     `json:"DOI"`
	Title          []string   `json:"title"`
	ContainerTitle []string   `json:"container-title"`
	Volume         string     `json:"volume"`
	Issue          string     `json:"issue"`
	Page           string     `json:"page"`
	Author         []workName `json:"author"`

	Issued          dateParts `json:"issued"`
	PublishedPrint  dateParts `json:"published-print"`
	PublishedOnline dateParts `json:"published-online"`
}

type workName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// dateParts is Crossref's nested date representation:
// {"date-parts": [[2020, 3, 15]]}.
type dateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// year returns the year component, or 0 if absent.
func (d dateParts) year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// publicationYear returns the work's publication year, preferring the
// issued date over print and online publication dates.
func (w workItem) publicationYear() int {
	for _, d := range []dateParts{w.Issued, w.PublishedPrint, w.PublishedOnline} {
		if y := d.year(); y != 0 {
			return y
		}
	}
	return 0
}

// title returns the work's primary title, or "".
func (w workItem) title() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// containerTitle returns the work's primary container title, or "".
func (w workItem) containerTitle() string {
	if len(w.ContainerTitle) == 0 {
		return ""
	}
	return w.ContainerTitle[0]
}
