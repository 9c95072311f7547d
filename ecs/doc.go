// Package ecs provides ECS adapters for nodeboard.
//
// [NewDonburiStore] bridges router interaction events (selection, node
// drags, pans, zooms) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// [NodeWorld] keeps the nodes themselves as Donburi entities and serves
// them to the editor as a NodeStore and Selection.
//
// The two pair through the world: events name nodes by id, and
// [NodeWorld.Entity] maps the id back to its entity.
//
// Usage with the editor:
//
//	world := donburi.NewWorld()
//	nodes := ecs.NewNodeWorld(world, nodeboard.DefaultNodes())
//	ed := nodeboard.NewEditor(nodes, nodes, nodeboard.Options{})
//	ed.Router().SetEntityStore(ecs.NewDonburiStore(world))
//
// Without the editor, [NewRouter] builds a router already wired this way.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
