package models

type GalleryItem struct {
	ID         string
	Kind       string
	Number     int
	Locator    string
	Text       string
	Tag        string
	DatabaseID string
}

type SampleItem struct {
	ID           string
	ThumbnailURL string
	FullURL      string
	Tags         []string
}

const (
	KindImages = "images"
	KindGifs   = "gifs"
	TabBrowse  = "browse"
)

/*
IsAnimatedKind maps a gallery kind from a URL to the collection it targets.
The second return is false for an unknown kind.
*/
func IsAnimatedKind(kind string) (bool, bool) {
	switch kind {
	case KindImages:
		return false, true
	case KindGifs:
		return true, true
	}

	return false, false
}

func KindOf(animated bool) string {
	if animated {
		return KindGifs
	}

	return KindImages
}
