package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wheelbot/wheelie/internal/models"
	"github.com/wheelbot/wheelie/internal/services/spin"
	"github.com/wheelbot/wheelie/internal/wheel"
)

// embedColor parses an option color like "#2ecc71" into the int Discord
// embeds use; unparseable colors fall back to a neutral grey
func embedColor(color string) int {
	parsed, err := strconv.ParseInt(strings.TrimPrefix(color, "#"), 16, 32)
	if err != nil {
		return 0x95a5a6
	}
	return int(parsed)
}

// renderWheelEmbed renders a wheel's options with their angular shares
func renderWheelEmbed(w *models.Wheel, segments []wheel.Segment) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(w.Options))

	for i, opt := range w.Options {
		share := (segments[i].End - segments[i].Start) / wheel.FullCircle

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   opt.Label,
			Value:  fmt.Sprintf("weight %g · %.0f%% of the wheel · %s", opt.Weight, share*100, opt.Color),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "🎡 The Wheel",
		Description: fmt.Sprintf("%d options. `/wheel spin` to let it decide.", len(w.Options)),
		Color:       0x3498db,
		Fields:      fields,
	}
}

// renderSpinResponse renders a spin result with a Spin Again button
func renderSpinResponse(s *discordgo.Session, i *discordgo.InteractionCreate, output *spin.SpinOutput, username string) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎡 %s", output.Option.Label),
		Description: fmt.Sprintf("%s spun the wheel and it landed on **%s** after %.0f°.", username, output.Option.Label, output.Angle),
		Color:       embedColor(output.Option.Color),
	}

	spinButton := discordgo.Button{
		Label:    "Spin Again",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonSpinAgain,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎡",
		},
	}

	return RespondWithEmbedAndButtons(s, i, embed, []discordgo.MessageComponent{spinButton})
}

// renderHistoryEmbed renders recent spin outcomes, newest first
func renderHistoryEmbed(output *spin.GetHistoryOutput) *discordgo.MessageEmbed {
	if len(output.Records) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🎡 Spin History",
			Description: "Nobody has spun this wheel yet.",
			Color:       0x3498db,
		}
	}

	var sb strings.Builder
	for _, record := range output.Records {
		sb.WriteString(fmt.Sprintf("**%s** — %s (<t:%d:R>)\n", record.Label, record.PlayerName, record.Timestamp.Unix()))
	}

	return &discordgo.MessageEmbed{
		Title:       "🎡 Spin History",
		Description: sb.String(),
		Color:       0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d spins total", output.TotalSpins),
		},
	}
}
