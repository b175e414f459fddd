package mailbox

import (
	"os"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/rolodex/contact"
)

const (
	liveTestFlagEnv = "ROLODEX_LIVE_TEST"
	liveTestToEnv   = "ROLODEX_TEST_RECIPIENT"
)

func TestLiveHarvestAndShare(t *testing.T) {
	if os.Getenv(liveTestFlagEnv) != "1" {
		t.Skipf("set %s=1 to run live mailbox integration tests", liveTestFlagEnv)
	}

	address := strings.TrimSpace(os.Getenv(envAccountAddress))
	password := strings.TrimSpace(os.Getenv(envAccountPassword))
	if address == "" || password == "" {
		t.Skipf("set %s and %s to run live mailbox integration tests", envAccountAddress, envAccountPassword)
	}

	recipient := strings.TrimSpace(os.Getenv(liveTestToEnv))
	if recipient == "" {
		recipient = address
	}

	harvested, err := Harvest(HarvestInput{Limit: 25})
	be.Err(t, err, nil)
	for _, doc := range harvested.Documents {
		be.True(t, len(doc.Emails) == 1)
		be.True(t, doc.Emails[0].Value != "")
	}

	out, err := Share(ShareInput{
		Document: contact.Document{
			DisplayName: "Rolodex Live Test",
			Emails: []contact.Entry{
				{Value: address, Type: contact.NewLabel("work")},
			},
		},
		To:      []string{recipient},
		Subject: "rolodex live test card",
	})
	be.Err(t, err, nil)
	be.True(t, out.MessageID != "")
}
