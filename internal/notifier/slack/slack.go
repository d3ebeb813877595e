package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
)

// slackClient is an interface that contains the methods from the slack.Client
// that we use. This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendTopPlayerChange announces that a new player holds rank 1.
func (s *Notifier) SendTopPlayerChange(previous, current stats.DerivedPlayer, dryRun bool) error {
	msg := s.formatTopPlayerChange(previous, current)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendLeaderboard posts the current ranked standings.
func (s *Notifier) SendLeaderboard(ranked []stats.DerivedPlayer, dryRun bool) error {
	msg := s.formatLeaderboard(ranked)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats the standings for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(ranked []stats.DerivedPlayer) (any, error) {
	return s.formatLeaderboard(ranked), nil
}

// formatTopPlayerChange creates the Slack message for a change at rank 1.
func (s *Notifier) formatTopPlayerChange(previous, current stats.DerivedPlayer) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "👑 New champion! 👑", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf("*%s* takes rank 1 with an ELO of *%d*, dethroning %s.",
		current.ShownName(),
		current.Elo,
		previous.ShownName(),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the ranked standings message using Block Kit.
func (s *Notifier) formatLeaderboard(ranked []stats.DerivedPlayer) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Smash Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	const maxRows = 10
	for i, player := range ranked {
		if i >= maxRows {
			break
		}
		var medal string
		switch player.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s *%s* [%s]\n> *ELO*: %d | *W/L*: %d/%d | *Win rate*: %s | *K/D*: %s",
			player.Rank,
			medal,
			player.ShownName(),
			player.Tier,
			player.Elo,
			intOrZero(player.TotalWins),
			intOrZero(player.TotalLosses),
			stats.FormatWinRate(player.WinRate),
			stats.FormatKD(player.KDRatio),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	if len(ranked) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", "No rated players yet. Go play some matches!", false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
