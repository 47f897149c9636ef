package dto

// Relatorio is a generated CSV export ready to be sent as a download.
type Relatorio struct {
	Titulo   string
	Filename string
	CSV      []byte
}
