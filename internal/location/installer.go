package location

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// InstallerSearchBase is the maps search that lists installers near a ZIP code.
const InstallerSearchBase = "https://www.google.com/maps/search/window+installer+near+"

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ErrInvalidZIP is returned for anything other than a 5 or 9 digit US ZIP code.
var ErrInvalidZIP = errors.New("invalid ZIP code")

// InstallerSearchURL returns the maps search for window installers near zip.
func InstallerSearchURL(zip string) (string, error) {
	zip = strings.TrimSpace(zip)
	if !zipPattern.MatchString(zip) {
		return "", fmt.Errorf("%w: %q", ErrInvalidZIP, zip)
	}
	return InstallerSearchBase + zip, nil
}
