package settings

type number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

type Setting[T number] struct {
	Default T // initially allocated
	Maximal T // hard limit
}

type (
	Pool struct {
		// Workers is the number of worker goroutines. The value is fixed at
		// startup and never changes at runtime
		Workers int
		// QueueSize is the number of accepted connections the dispatch queue
		// absorbs before the acceptor starts blocking
		QueueSize int
	}

	Parser struct {
		// MaxLineLength limits a single request or header line. Longer lines
		// abort parsing
		MaxLineLength int
		// HeadBuffer bounds accumulation space for the whole request head
		HeadBuffer Setting[int]
	}

	TCP struct {
		// ReadBufferSize is how many bytes are read from a socket at most in
		// a single call
		ReadBufferSize int
	}

	Pages struct {
		// NotFound is the file served alongside 404 responses
		NotFound string
	}
)

type Settings struct {
	Pool   Pool
	Parser Parser
	TCP    TCP
	Pages  Pages
}

func Default() Settings {
	return Settings{
		Pool: Pool{
			Workers:   4,
			QueueSize: 64,
		},
		Parser: Parser{
			MaxLineLength: 8192,
			HeadBuffer: Setting[int]{
				Default: 1024,
				Maximal: 65536,
			},
		},
		TCP: TCP{
			ReadBufferSize: 2048,
		},
		Pages: Pages{
			NotFound: "pages/not_found.html",
		},
	}
}

// Fill replaces zero values of the passed settings with defaults, leaving
// everything explicitly set untouched.
func Fill(s Settings) Settings {
	defaults := Default()

	s.Pool.Workers = override(s.Pool.Workers, defaults.Pool.Workers)
	s.Pool.QueueSize = override(s.Pool.QueueSize, defaults.Pool.QueueSize)
	s.Parser.MaxLineLength = override(s.Parser.MaxLineLength, defaults.Parser.MaxLineLength)
	s.Parser.HeadBuffer.Default = override(s.Parser.HeadBuffer.Default, defaults.Parser.HeadBuffer.Default)
	s.Parser.HeadBuffer.Maximal = override(s.Parser.HeadBuffer.Maximal, defaults.Parser.HeadBuffer.Maximal)
	s.TCP.ReadBufferSize = override(s.TCP.ReadBufferSize, defaults.TCP.ReadBufferSize)
	if len(s.Pages.NotFound) == 0 {
		s.Pages.NotFound = defaults.Pages.NotFound
	}

	return s
}

func override[T number](custom, def T) T {
	if custom == 0 {
		return def
	}

	return custom
}
