package transport

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Scheme identifies which of the three transports an Endpoint names.
type Scheme int

const (
	SchemeDirect Scheme = iota
	SchemeIPC
	SchemeHTTP
	SchemeHTTPS
)

func (s Scheme) String() string {
	switch s {
	case SchemeDirect:
		return "direct"
	case SchemeIPC:
		return "ipc"
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	default:
		return "?"
	}
}

// Endpoint is a parsed connection target, extending the wire-format
// address grammar:
//
//	endpoint := "direct://" path
//	          | "ipc://" path
//	          | ("http://" | "https://") host [":" port] path
type Endpoint struct {
	Scheme Scheme
	Path   string // direct/ipc: the store path or socket path
	Host   string // http/https only
	Port   string // http/https only, may be empty
	URL    string // http/https only: the full original URL
}

type lexToken struct {
	scheme string // non-empty for a scheme token
	sep    bool   // true for the "://" token
}

var (
	endpointLexer     *lexmachine.Lexer
	endpointLexerOnce sync.Once
	endpointLexerErr  error
)

// endpointSchemes is the fixed, small keyword set the endpoint tokenizer
// recognizes. Only the "scheme://" prefix is run through the DFA;
// everything after it is scheme-specific and is sliced out directly
// (host/port/path only has further structure for http(s), handled below
// with net/url). Feeding the unbounded remainder into the same DFA would
// make the lexer's own catch-all pattern the longest match at every
// position, swallowing the scheme literals it's supposed to compete
// against — so the grammar this lexer recognizes is deliberately just
// the two-token prefix.
var endpointSchemes = []string{"direct", "ipc", "https", "http"}

// buildEndpointLexer compiles a lexmachine DFA recognizing exactly the
// fixed scheme keywords and the "://" separator — a tiny, fixed lexical
// grammar, exactly lexmachine's sweet spot, unlike the backtracking
// character grammar SPARQL itself needs (package grammar/sparqlparse).
func buildEndpointLexer() (*lexmachine.Lexer, error) {
	endpointLexerOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		for _, scheme := range endpointSchemes {
			scheme := scheme
			lexer.Add([]byte(scheme), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
				return lexToken{scheme: scheme}, nil
			})
		}
		lexer.Add([]byte(`://`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
			return lexToken{sep: true}, nil
		})
		if err := lexer.Compile(); err != nil {
			endpointLexerErr = fmt.Errorf("transport: compiling endpoint lexer: %w", err)
			return
		}
		endpointLexer = lexer
	})
	return endpointLexer, endpointLexerErr
}

// ParseEndpoint tokenizes the "scheme://" prefix of s and interprets the
// remainder according to that scheme.
func ParseEndpoint(s string) (*Endpoint, error) {
	lexer, err := buildEndpointLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("transport: scanning endpoint %q: %w", s, err)
	}

	schemeTok, err, eof := scan.Next()
	if err != nil || eof {
		return nil, fmt.Errorf("transport: malformed endpoint %q, want scheme://path", s)
	}
	scheme := schemeTok.(lexToken)
	if scheme.scheme == "" {
		return nil, fmt.Errorf("transport: malformed endpoint %q, want scheme://path", s)
	}

	sepTok, err, eof := scan.Next()
	if err != nil || eof {
		return nil, fmt.Errorf("transport: malformed endpoint %q, want scheme://path", s)
	}
	if sep := sepTok.(lexToken); !sep.sep {
		return nil, fmt.Errorf("transport: malformed endpoint %q, want scheme://path", s)
	}

	rest := s[len(scheme.scheme)+len("://"):]

	switch scheme.scheme {
	case "direct":
		return &Endpoint{Scheme: SchemeDirect, Path: rest}, nil
	case "ipc":
		return &Endpoint{Scheme: SchemeIPC, Path: rest}, nil
	case "http", "https":
		u, err := url.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("transport: parsing http(s) endpoint %q: %w", s, err)
		}
		sch := SchemeHTTP
		if strings.EqualFold(u.Scheme, "https") {
			sch = SchemeHTTPS
		}
		return &Endpoint{
			Scheme: sch,
			Host:   u.Hostname(),
			Port:   u.Port(),
			Path:   u.Path,
			URL:    s,
		}, nil
	default:
		return nil, fmt.Errorf("transport: unknown endpoint scheme %q", scheme.scheme)
	}
}
