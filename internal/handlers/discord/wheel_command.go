package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wheelbot/wheelie/internal/models"
	"github.com/wheelbot/wheelie/internal/services/spin"
	"github.com/wheelbot/wheelie/internal/wheel"
)

// Component custom IDs
const (
	ButtonSpinAgain = "wheel_spin_again"
)

// defaultPalette colors options that were added without an explicit color
var defaultPalette = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f1c40f",
	"#9b59b6", "#e67e22", "#1abc9c", "#e84393",
	"#34495e", "#16a085", "#d35400", "#7f8c8d",
}

// WheelCommand handles the /wheel command
type WheelCommand struct {
	BaseCommand
	spinService spin.Service
}

// NewWheelCommand creates a new wheel command handler
func NewWheelCommand(spinService spin.Service) *WheelCommand {
	return &WheelCommand{
		BaseCommand: BaseCommand{
			Name:        "wheel",
			Description: "Decision wheel commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create this channel's wheel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "labels",
							Description: "Comma-separated option labels (defaults to Yes/No)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add an option to the wheel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "label",
							Description: "Option label",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "weight",
							Description: "Option weight (defaults to 1)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "color",
							Description: "Option color, e.g. #e74c3c",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove an option from the wheel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "label",
							Description: "Label of the option to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the wheel's options",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "spin",
					Description: "Spin the wheel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent spin results",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "Number of results to show",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete this channel's wheel and its history",
				},
			},
		},
		spinService: spinService,
	}
}

// Handle processes a Discord interaction for the wheel command
func (c *WheelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "create":
		err = c.handleCreate(s, i, sub, channelID, userID)
	case "add":
		err = c.handleAdd(s, i, sub, channelID)
	case "remove":
		err = c.handleRemove(s, i, sub, channelID)
	case "show":
		err = c.handleShow(s, i, channelID)
	case "spin":
		err = c.handleSpin(s, i, channelID, userID, username)
	case "history":
		err = c.handleHistory(s, i, sub, channelID)
	case "delete":
		err = c.handleDelete(s, i, channelID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// HandleSpinAgain re-runs a spin from the Spin Again button
func (c *WheelCommand) HandleSpinAgain(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	return c.handleSpin(s, i, channelID, userID, username)
}

// handleCreate handles the create subcommand
func (c *WheelCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID, userID string) error {
	ctx := context.Background()

	options := parseLabels(stringOption(sub, "labels"))

	output, err := c.spinService.CreateWheel(ctx, &spin.CreateWheelInput{
		ChannelID: channelID,
		CreatorID: userID,
		Options:   options,
	})
	if err != nil {
		if errors.Is(err, spin.ErrWheelAlreadyExists) {
			return RespondWithError(s, i, "This channel already has a wheel. Use `/wheel show` to see it or `/wheel delete` to start over.")
		}
		if errors.Is(err, wheel.ErrInvalidConfiguration) {
			return RespondWithError(s, i, fmt.Sprintf("That's not a valid wheel: %v", err))
		}
		log.Printf("Error creating wheel: %v", err)
		return RespondWithError(s, i, "Failed to create the wheel.")
	}

	segments, buildErr := wheel.BuildPartition(output.Wheel.Options)
	if buildErr != nil {
		log.Printf("Error partitioning new wheel: %v", buildErr)
		return RespondWithError(s, i, "Failed to create the wheel.")
	}

	return RespondWithEmbed(s, i, renderWheelEmbed(output.Wheel, segments))
}

// handleAdd handles the add subcommand
func (c *WheelCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID string) error {
	ctx := context.Background()

	w, err := c.lookupWheel(ctx, s, i, channelID)
	if err != nil || w == nil {
		return err
	}

	// An omitted weight defaults to 1; a supplied weight is passed through
	// untouched so nonsense like 0 is rejected as invalid, not papered over
	weight, hasWeight := numberOption(sub, "weight")
	if !hasWeight {
		weight = 1
	}

	color := stringOption(sub, "color")
	if color == "" {
		color = defaultPalette[len(w.Options)%len(defaultPalette)]
	}

	output, err := c.spinService.AddOption(ctx, &spin.AddOptionInput{
		WheelID: w.ID,
		Option: models.Option{
			Label:  stringOption(sub, "label"),
			Color:  color,
			Weight: weight,
		},
	})
	if err != nil {
		if errors.Is(err, wheel.ErrInvalidConfiguration) {
			return RespondWithError(s, i, fmt.Sprintf("Can't add that option: %v", err))
		}
		if errors.Is(err, spin.ErrTooManyOptions) {
			return RespondWithError(s, i, "The wheel is full; remove an option first.")
		}
		log.Printf("Error adding option: %v", err)
		return RespondWithError(s, i, "Failed to add the option.")
	}

	segments, buildErr := wheel.BuildPartition(output.Wheel.Options)
	if buildErr != nil {
		log.Printf("Error partitioning wheel: %v", buildErr)
		return RespondWithError(s, i, "Failed to add the option.")
	}

	return RespondWithEmbed(s, i, renderWheelEmbed(output.Wheel, segments))
}

// handleRemove handles the remove subcommand
func (c *WheelCommand) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID string) error {
	ctx := context.Background()

	w, err := c.lookupWheel(ctx, s, i, channelID)
	if err != nil || w == nil {
		return err
	}

	label := stringOption(sub, "label")

	output, err := c.spinService.RemoveOption(ctx, &spin.RemoveOptionInput{
		WheelID: w.ID,
		Label:   label,
	})
	if err != nil {
		if errors.Is(err, spin.ErrOptionNotFound) {
			return RespondWithError(s, i, fmt.Sprintf("There's no option named %q on the wheel.", label))
		}
		if errors.Is(err, spin.ErrTooFewOptions) {
			return RespondWithError(s, i, "A wheel needs at least two options; add another before removing this one.")
		}
		log.Printf("Error removing option: %v", err)
		return RespondWithError(s, i, "Failed to remove the option.")
	}

	segments, buildErr := wheel.BuildPartition(output.Wheel.Options)
	if buildErr != nil {
		log.Printf("Error partitioning wheel: %v", buildErr)
		return RespondWithError(s, i, "Failed to remove the option.")
	}

	return RespondWithEmbed(s, i, renderWheelEmbed(output.Wheel, segments))
}

// handleShow handles the show subcommand
func (c *WheelCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	output, err := c.spinService.GetWheelByChannel(ctx, &spin.GetWheelByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, spin.ErrWheelNotFound) {
			return RespondWithEphemeralMessage(s, i, "This channel has no wheel yet. Create one with `/wheel create`.")
		}
		log.Printf("Error getting wheel: %v", err)
		return RespondWithError(s, i, "Failed to look up the wheel.")
	}

	return RespondWithEmbed(s, i, renderWheelEmbed(output.Wheel, output.Segments))
}

// handleSpin handles the spin subcommand and the Spin Again button
func (c *WheelCommand) handleSpin(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	ctx := context.Background()

	w, err := c.lookupWheel(ctx, s, i, channelID)
	if err != nil || w == nil {
		return err
	}

	output, err := c.spinService.Spin(ctx, &spin.SpinInput{
		WheelID:    w.ID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		if errors.Is(err, spin.ErrSpinInProgress) {
			return RespondWithEphemeralMessage(s, i, "The wheel is already spinning; wait for it to stop.")
		}
		if errors.Is(err, wheel.ErrInvalidConfiguration) {
			return RespondWithError(s, i, fmt.Sprintf("The wheel can't be spun: %v", err))
		}
		log.Printf("Error spinning wheel: %v", err)
		return RespondWithError(s, i, "Failed to spin the wheel.")
	}

	return renderSpinResponse(s, i, output, username)
}

// handleHistory handles the history subcommand
func (c *WheelCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID string) error {
	ctx := context.Background()

	w, err := c.lookupWheel(ctx, s, i, channelID)
	if err != nil || w == nil {
		return err
	}

	output, err := c.spinService.GetHistory(ctx, &spin.GetHistoryInput{
		WheelID: w.ID,
		Limit:   int(integerOption(sub, "count")),
	})
	if err != nil {
		log.Printf("Error getting history: %v", err)
		return RespondWithError(s, i, "Failed to look up spin history.")
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(output))
}

// handleDelete handles the delete subcommand
func (c *WheelCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	w, err := c.lookupWheel(ctx, s, i, channelID)
	if err != nil || w == nil {
		return err
	}

	_, err = c.spinService.DeleteWheel(ctx, &spin.DeleteWheelInput{
		WheelID: w.ID,
	})
	if err != nil {
		log.Printf("Error deleting wheel: %v", err)
		return RespondWithError(s, i, "Failed to delete the wheel.")
	}

	return RespondWithMessage(s, i, "The wheel and its history are gone. `/wheel create` starts a new one.")
}

// lookupWheel fetches the channel's wheel, responding to the interaction
// itself when there isn't one. A nil wheel with a nil error means the
// response has already been sent.
func (c *WheelCommand) lookupWheel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) (*models.Wheel, error) {
	output, err := c.spinService.GetWheelByChannel(ctx, &spin.GetWheelByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, spin.ErrWheelNotFound) {
			return nil, RespondWithEphemeralMessage(s, i, "This channel has no wheel yet. Create one with `/wheel create`.")
		}
		log.Printf("Error getting wheel: %v", err)
		return nil, RespondWithError(s, i, "Failed to look up the wheel.")
	}

	return output.Wheel, nil
}

// parseLabels turns a comma-separated label list into options with default
// weights and palette colors. An empty input yields nil so the service
// falls back to its default wheel.
func parseLabels(labels string) []models.Option {
	if strings.TrimSpace(labels) == "" {
		return nil
	}

	var options []models.Option
	for _, label := range strings.Split(labels, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		options = append(options, models.Option{
			Label:  label,
			Color:  defaultPalette[len(options)%len(defaultPalette)],
			Weight: 1,
		})
	}

	return options
}

// stringOption returns the named string option of a subcommand, or ""
func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// numberOption returns the named number option of a subcommand and whether
// it was supplied; zero is a legal (if doomed) user value
func numberOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (float64, bool) {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.FloatValue(), true
		}
	}
	return 0, false
}

// integerOption returns the named integer option of a subcommand, or 0
func integerOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.IntValue()
		}
	}
	return 0
}
