package engine

import (
	"rlg327/internal/domain"
	"rlg327/internal/engine/handlers"
	"rlg327/internal/engine/handlers/actions"
	"rlg327/internal/engine/handlers/events"
)

func defaultHandlers() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:    handlers.WithDirection(actions.HandleMove),
		domain.ActionRest:    handlers.WithEmptyPayload(actions.HandleRest),
		domain.ActionAscend:  handlers.WithEmptyPayload(events.HandleAscend),
		domain.ActionDescend: handlers.WithEmptyPayload(events.HandleDescend),
	}
}
