package astro

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultSesameBaseURL is the CDS Sesame name resolver endpoint.
const DefaultSesameBaseURL = "https://cds.unistra.fr/cgi-bin/nph-sesame"

// ResolveErrorKind classifies a name-resolution failure so the UI can show
// a distinct message for each case.
type ResolveErrorKind int

const (
	// ResolveNotFound: the service answered but knows no such object.
	ResolveNotFound ResolveErrorKind = iota
	// ResolveNetwork: the service could not be reached.
	ResolveNetwork
	// ResolveFailed: the service answered something unusable.
	ResolveFailed
)

// ResolveError is a classified name-resolution failure.
type ResolveError struct {
	Kind ResolveErrorKind
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	switch e.Kind {
	case ResolveNotFound:
		return fmt.Sprintf("object %q was not found in any catalog", e.Name)
	case ResolveNetwork:
		return fmt.Sprintf("could not reach the name resolution service for %q: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("name resolution failed for %q: %v", e.Name, e.Err)
	}
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Resolver looks up object coordinates by free-text name against a Sesame
// compatible service. BaseURL and Client are overridable for tests.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

// NewResolver returns a Resolver against the default CDS endpoint with a
// bounded HTTP client.
func NewResolver() *Resolver {
	return &Resolver{
		BaseURL: DefaultSesameBaseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Resolve queries the service for name and returns equatorial coordinates
// in degrees (RA in [0,360)). Failures are always *ResolveError with the
// NotFound / Network / Failed classification.
func (r *Resolver) Resolve(ctx context.Context, name string) (raDeg, decDeg float64, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, 0, &ResolveError{Kind: ResolveFailed, Name: name, Err: fmt.Errorf("empty object name")}
	}

	// plain-text output, trying Simbad, NED and VizieR in order
	endpoint := fmt.Sprintf("%s/-op/SNV?%s", r.BaseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, &ResolveError{Kind: ResolveFailed, Name: name, Err: err}
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, 0, &ResolveError{Kind: ResolveNetwork, Name: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, &ResolveError{Kind: ResolveFailed, Name: name,
			Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	// Sesame text output carries resolved J2000 coordinates on a line of
	// the form "%J 083.63308 +22.01450 = ...". Absence of any such line
	// means no catalog matched.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "%J ") {
			continue
		}
		fields := strings.Fields(line[3:])
		if len(fields) < 2 {
			continue
		}
		ra, errRA := strconv.ParseFloat(fields[0], 64)
		dec, errDec := strconv.ParseFloat(fields[1], 64)
		if errRA != nil || errDec != nil {
			return 0, 0, &ResolveError{Kind: ResolveFailed, Name: name,
				Err: fmt.Errorf("unparseable coordinate line %q", line)}
		}
		return normalizeDeg(ra), dec, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, &ResolveError{Kind: ResolveNetwork, Name: name, Err: err}
	}
	return 0, 0, &ResolveError{Kind: ResolveNotFound, Name: name}
}
