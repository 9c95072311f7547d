package ecs

import (
	"github.com/phanxgames/nodeboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries every nodeboard.InteractionEvent the router
// emits: EventSelect and EventDeselect on selection changes, EventDragStart,
// EventDrag and EventDragEnd (Cancelled set when the session was dropped)
// while a node moves, EventPanStart, EventPan and EventPanEnd while the
// camera pans, and EventZoom per wheel step. Events queue until
// ProcessEvents or events.ProcessAllEvents runs.
var InteractionEventType = events.NewEventType[nodeboard.InteractionEvent]()

// worldPublisher publishes router events into one world.
type worldPublisher struct {
	world donburi.World
}

// NewDonburiStore returns a nodeboard.EntityStore publishing to
// InteractionEventType in world.
func NewDonburiStore(world donburi.World) nodeboard.EntityStore {
	return worldPublisher{world: world}
}

func (p worldPublisher) EmitEvent(ev nodeboard.InteractionEvent) {
	InteractionEventType.Publish(p.world, ev)
}

// NewRouter wires a router to nodes: the NodeWorld serves as both node
// store and selection, and interaction events are published into the same
// world, so systems can look up the entity behind an event's NodeID with
// NodeWorld.Entity.
func NewRouter(cam *nodeboard.Camera, nodes *NodeWorld) *nodeboard.Router {
	r := nodeboard.NewRouter(cam, nodes, nodes)
	r.SetEntityStore(NewDonburiStore(nodes.World()))
	return r
}
