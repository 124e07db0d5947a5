package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutStored   = "2006-01-02"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, usage string) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		usage+` Example: --on="2025-3-14" or --on="3/14".`)
}

// Date returns the flag as YYYY-MM-DD, or "" when unset. A short month/day
// date means the next such day from now.
func (o *OnOptions) Date(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return "", err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// 1/3 said on 12/5 means next year, not 11 months ago.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if t.Before(today) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t.Format(layoutStored), nil
}
