package livestream

import (
	"fmt"
	"time"

	"github.com/praja-pulse/campaign-backend/internal/classify"
	"github.com/praja-pulse/campaign-backend/internal/shared"
	"github.com/praja-pulse/campaign-backend/internal/translate"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

// TranscriptEvent is one published unit of pipeline output. Events are
// immutable after creation and delivered fire-and-forget to whoever is
// subscribed at the moment they are produced.
type TranscriptEvent struct {
	ID            string           `json:"id"`
	Timestamp     string           `json:"timestamp"`
	Text          string           `json:"text"`
	English       string           `json:"english"`
	Hindi         string           `json:"hindi"`
	MentionsYSRCP bool             `json:"mentions_ysrcp"`
	MentionsTDP   bool             `json:"mentions_tdp"`
	Sentiment     shared.Sentiment `json:"sentiment"`
}

func newTranscriptEvent(channelID string, rendition translate.Result, cls classify.Classification) TranscriptEvent {
	now := time.Now()
	return TranscriptEvent{
		ID:            fmt.Sprintf("%s-%d", channelID, now.UnixNano()),
		Timestamp:     now.In(ist).Format("02 Jan 2006 15:04:05 MST"),
		Text:          rendition.Original,
		English:       rendition.English,
		Hindi:         rendition.Hindi,
		MentionsYSRCP: cls.MentionsYSRCP,
		MentionsTDP:   cls.MentionsTDP,
		Sentiment:     cls.Sentiment,
	}
}

// Publisher is the outbound half of the control surface.
type Publisher interface {
	PublishTranscript(evt TranscriptEvent)
	PublishError(channelID, message string)
}
