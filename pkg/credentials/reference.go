package credentials

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHubDomain is the host accepted in repository URLs.
const GitHubDomain = "github.com"

var (
	httpsRemoteRe = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	sshRemoteRe   = regexp.MustCompile(`github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// Reference is a parsed repository reference.
type Reference struct {
	Owner      string
	Repository string
}

// String returns "owner/repository".
func (r Reference) String() string {
	return r.Owner + "/" + r.Repository
}

// ParseReference parses the supported repository reference formats:
//
//	owner/repo
//	https://github.com/owner/repo(.git)
//	git@github.com:owner/repo(.git)
func ParseReference(ref string) (Reference, error) {
	ref = strings.TrimSpace(ref)

	// SSH remote: git@github.com:owner/repo.git
	if strings.Contains(ref, GitHubDomain+":") {
		return matchReference(sshRemoteRe, ref)
	}

	// HTTPS URL: https://github.com/owner/repo
	if strings.Contains(ref, GitHubDomain+"/") {
		return matchReference(httpsRemoteRe, ref)
	}

	// owner/repo
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	return Reference{Owner: parts[0], Repository: parts[1]}, nil
}

func matchReference(re *regexp.Regexp, ref string) (Reference, error) {
	matches := re.FindStringSubmatch(ref)
	if len(matches) != 3 {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	return Reference{Owner: matches[1], Repository: matches[2]}, nil
}
