package media

// Kind identifies the role a file plays in a submission
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Extensions returns the lowercase extension allow-list for the kind
func (k Kind) Extensions() []string {
	switch k {
	case KindImage:
		return []string{".jpg", ".jpeg", ".png"}
	case KindVideo:
		return []string{".mp4"}
	case KindAudio:
		return []string{".mp3"}
	}
	return nil
}
