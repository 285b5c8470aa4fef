package yieldsvc

import (
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
)

// Fingerprint is a UUID v5 of the request content. Structurally identical
// requests have the same fingerprint.
func (r PredictionRequest) Fingerprint() string {
	s := fmt.Sprintf("%d|%g|%s|%s",
		r.Year, r.AreaHa, r.Crop, strings.Join(r.AllCrops, ","))
	return gnuuid.New(s).String()
}

// Fingerprint is a UUID v5 of the request content.
func (r TrendRequest) Fingerprint() string {
	return gnuuid.New(r.County + "|" + r.Crop).String()
}
