package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/messaging"
	"github.com/KirkDiggler/roomsync/internal/services/room"
)

// ActionHandler handles one named action a browser may request
type ActionHandler interface {
	// GetName returns the action name
	GetName() string

	// Handle runs the action for the signed-in actor
	Handle(ctx context.Context, scope room.Scope, args json.RawMessage) (any, error)
}

// action adapts a function taking decoded arguments to ActionHandler
type action[A any] struct {
	name string
	fn   func(ctx context.Context, scope room.Scope, args *A) (any, error)
}

func newAction[A any](name string, fn func(ctx context.Context, scope room.Scope, args *A) (any, error)) ActionHandler {
	return &action[A]{name: name, fn: fn}
}

func (a *action[A]) GetName() string {
	return a.name
}

func (a *action[A]) Handle(ctx context.Context, scope room.Scope, raw json.RawMessage) (any, error) {
	args := new(A)
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, args); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", messaging.ErrInvalidRequest, a.name, err)
		}
	}
	return a.fn(ctx, scope, args)
}

type noArgs struct{}

type statusArgs struct {
	Status models.RoomStatus `json:"status"`
}

type optionArgs struct {
	List  models.OptionList `json:"list"`
	Label string            `json:"label"`
}

type renameOptionArgs struct {
	List models.OptionList `json:"list"`
	From string            `json:"from"`
	To   string            `json:"to"`
}

type labelArgs struct {
	PlayerID string `json:"playerId"`
	Label    string `json:"label"`
}

type readyArgs struct {
	PlayerID string `json:"playerId"`
	Ready    bool   `json:"ready"`
}

type nicknameArgs struct {
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
}

type playerArgs struct {
	PlayerID string `json:"playerId"`
}

type globalStateArgs struct {
	Label string `json:"label"`
}

type tickerArgs struct {
	Text  string  `json:"text"`
	Speed float64 `json:"speed"`
}

type baseTimeArgs struct {
	BaseTime float64 `json:"baseTime"`
}

type clockModeArgs struct {
	Mode models.ClockMode `json:"mode"`
}

type messageArgs struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type channelArgs struct {
	Channel string `json:"channel"`
}

type openChatRoomArgs struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type chatRoomArgs struct {
	ChatRoomID string `json:"chatRoomId"`
}

type voteArgs struct {
	GameID string `json:"gameId"`
}

type commandArgs struct {
	Type           models.NotificationType `json:"type"`
	SoundID        string                  `json:"soundId"`
	DurationMs     int                     `json:"durationMs"`
	Text           string                  `json:"text"`
	TargetPlayerID string                  `json:"targetPlayerId"`
}

// toggleLabel builds the action toggling one per-player list
func toggleLabel(name string, rooms room.Service, list models.OptionList) ActionHandler {
	return newAction(name, func(ctx context.Context, scope room.Scope, args *labelArgs) (any, error) {
		out, err := rooms.ToggleLabel(ctx, &room.ToggleLabelInput{Scope: scope, PlayerID: args.PlayerID, List: list, Label: args.Label})
		if err != nil {
			return nil, err
		}
		return map[string]any{"active": out.Active}, nil
	})
}

// roomActions lists every action the gateway routes
func roomActions(rooms room.Service, commands command.Service) []ActionHandler {
	return []ActionHandler{
		newAction("createRoom", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			out, err := rooms.CreateRoom(ctx, &room.CreateRoomInput{Scope: scope})
			if err != nil {
				return nil, err
			}
			return map[string]any{"seeded": out.Seeded}, nil
		}),
		newAction("setStatus", func(ctx context.Context, scope room.Scope, args *statusArgs) (any, error) {
			return nil, rooms.SetStatus(ctx, &room.SetStatusInput{Scope: scope, Status: args.Status})
		}),
		newAction("startGame", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			out, err := rooms.StartGame(ctx, &room.StartGameInput{Scope: scope})
			if err != nil {
				return nil, err
			}
			return map[string]any{"gameId": out.GameID}, nil
		}),
		newAction("advancePhase", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			out, err := rooms.AdvancePhase(ctx, &room.AdvancePhaseInput{Scope: scope})
			if err != nil {
				return nil, err
			}
			return map[string]any{"gamePhase": out.GamePhase}, nil
		}),
		newAction("endGame", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			return nil, rooms.EndGame(ctx, &room.EndGameInput{Scope: scope})
		}),
		newAction("softReset", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			return nil, rooms.SoftReset(ctx, &room.SoftResetInput{Scope: scope})
		}),
		newAction("shutdown", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			return nil, rooms.Shutdown(ctx, &room.ShutdownInput{Scope: scope})
		}),
		newAction("addOption", func(ctx context.Context, scope room.Scope, args *optionArgs) (any, error) {
			return nil, rooms.AddOption(ctx, &room.AddOptionInput{Scope: scope, List: args.List, Label: args.Label})
		}),
		newAction("renameOption", func(ctx context.Context, scope room.Scope, args *renameOptionArgs) (any, error) {
			return nil, rooms.RenameOption(ctx, &room.RenameOptionInput{Scope: scope, List: args.List, From: args.From, To: args.To})
		}),
		newAction("deleteOption", func(ctx context.Context, scope room.Scope, args *optionArgs) (any, error) {
			return nil, rooms.DeleteOption(ctx, &room.DeleteOptionInput{Scope: scope, List: args.List, Label: args.Label})
		}),
		toggleLabel("toggleRole", rooms, models.OptionListRoles),
		toggleLabel("togglePlayerState", rooms, models.OptionListPlayerStates),
		toggleLabel("togglePublicState", rooms, models.OptionListPublicStates),
		newAction("setReady", func(ctx context.Context, scope room.Scope, args *readyArgs) (any, error) {
			return nil, rooms.SetReady(ctx, &room.SetReadyInput{Scope: scope, PlayerID: playerOrSelf(scope, args.PlayerID), Ready: args.Ready})
		}),
		newAction("setNickname", func(ctx context.Context, scope room.Scope, args *nicknameArgs) (any, error) {
			return nil, rooms.SetNickname(ctx, &room.SetNicknameInput{Scope: scope, PlayerID: playerOrSelf(scope, args.PlayerID), Nickname: args.Nickname})
		}),
		newAction("expelPlayer", func(ctx context.Context, scope room.Scope, args *playerArgs) (any, error) {
			return nil, rooms.ExpelPlayer(ctx, &room.ExpelPlayerInput{Scope: scope, PlayerID: args.PlayerID})
		}),
		newAction("setGlobalState", func(ctx context.Context, scope room.Scope, args *globalStateArgs) (any, error) {
			return nil, rooms.SetGlobalState(ctx, &room.SetGlobalStateInput{Scope: scope, Label: args.Label})
		}),
		newAction("setTicker", func(ctx context.Context, scope room.Scope, args *tickerArgs) (any, error) {
			return nil, rooms.SetTicker(ctx, &room.SetTickerInput{Scope: scope, Text: args.Text, Speed: args.Speed})
		}),
		newAction("startClock", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			return nil, rooms.StartClock(ctx, &room.StartClockInput{Scope: scope})
		}),
		newAction("pauseClock", func(ctx context.Context, scope room.Scope, _ *noArgs) (any, error) {
			return nil, rooms.PauseClock(ctx, &room.PauseClockInput{Scope: scope})
		}),
		newAction("resetClock", func(ctx context.Context, scope room.Scope, args *baseTimeArgs) (any, error) {
			return nil, rooms.ResetClock(ctx, &room.ResetClockInput{Scope: scope, BaseTime: args.BaseTime})
		}),
		newAction("setClockBase", func(ctx context.Context, scope room.Scope, args *baseTimeArgs) (any, error) {
			return nil, rooms.SetClockBase(ctx, &room.SetClockBaseInput{Scope: scope, BaseTime: args.BaseTime})
		}),
		newAction("setClockMode", func(ctx context.Context, scope room.Scope, args *clockModeArgs) (any, error) {
			return nil, rooms.SetClockMode(ctx, &room.SetClockModeInput{Scope: scope, Mode: args.Mode})
		}),
		newAction("sendMessage", func(ctx context.Context, scope room.Scope, args *messageArgs) (any, error) {
			out, err := rooms.SendMessage(ctx, &room.SendMessageInput{Scope: scope, Channel: args.Channel, Text: args.Text})
			if err != nil {
				return nil, err
			}
			return map[string]any{"messageId": out.MessageID}, nil
		}),
		newAction("setTyping", func(ctx context.Context, scope room.Scope, args *channelArgs) (any, error) {
			return nil, rooms.SetTyping(ctx, &room.SetTypingInput{Scope: scope, Channel: args.Channel})
		}),
		newAction("openChatRoom", func(ctx context.Context, scope room.Scope, args *openChatRoomArgs) (any, error) {
			out, err := rooms.OpenChatRoom(ctx, &room.OpenChatRoomInput{Scope: scope, Name: args.Name, Members: args.Members})
			if err != nil {
				return nil, err
			}
			return map[string]any{"chatRoomId": out.ChatRoomID, "channel": out.Channel}, nil
		}),
		newAction("closeChatRoom", func(ctx context.Context, scope room.Scope, args *chatRoomArgs) (any, error) {
			return nil, rooms.CloseChatRoom(ctx, &room.CloseChatRoomInput{Scope: scope, ChatRoomID: args.ChatRoomID})
		}),
		newAction("toggleVote", func(ctx context.Context, scope room.Scope, args *voteArgs) (any, error) {
			out, err := rooms.ToggleVote(ctx, &room.ToggleVoteInput{Scope: scope, GameID: args.GameID})
			if err != nil {
				return nil, err
			}
			return map[string]any{"voted": out.Voted}, nil
		}),
		newAction("sendCommand", func(ctx context.Context, scope room.Scope, args *commandArgs) (any, error) {
			out, err := commands.Enqueue(ctx, &command.EnqueueInput{
				RoomID: scope.RoomID,
				Actor:  scope.Actor,
				Type:   args.Type,
				Payload: models.NotificationPayload{
					SoundID:    args.SoundID,
					DurationMs: args.DurationMs,
					Text:       args.Text,
				},
				TargetPlayerID: args.TargetPlayerID,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"notificationId": out.NotificationID}, nil
		}),
	}
}

// playerOrSelf defaults an omitted player id to the actor
func playerOrSelf(scope room.Scope, playerID string) string {
	if playerID == "" && scope.Actor != nil {
		return scope.Actor.ID
	}
	return playerID
}
