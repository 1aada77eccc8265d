package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JAVASCRIPT  MIME = "text/javascript"
	JSON        MIME = "application/json"
	PNG         MIME = "image/png"
	JPEG        MIME = "image/jpeg"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
)

var Extension = map[string]MIME{
	".htm":  HTML,
	".html": HTML,
	".css":  CSS,
	".js":   JAVASCRIPT,
	".mjs":  JAVASCRIPT,
	".json": JSON,
	".txt":  Plain,
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".svg":  SVG,
	".ico":  ICO,
}

// OfExtension maps a file extension (with the leading dot) to a MIME type,
// falling back to application/octet-stream.
func OfExtension(ext string) MIME {
	if m, found := Extension[ext]; found {
		return m
	}

	return OctetStream
}
