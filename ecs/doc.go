// Package ecs provides ECS adapters for nodeeditor's event system.
//
// [NewDonburiSink] bridges editor events (node created and destroyed, drag
// start and end, settings loaded and saved) into a [Donburi] world as typed
// events, and mirrors every live node as an entity carrying a [NodeData]
// component.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ed := nodeeditor.NewContext(host, nodeeditor.Config{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
