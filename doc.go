// Package sortable turns pointer drags over sibling nodes into animated
// reorders, on a small retained 2D scene for [Ebitengine].
//
// A [Scene] owns a tree of [Node] values laid out as vertical stacks, rows or
// tables, a scrolling [Viewport], and pointer input. A [Sortable] listens to
// the scene and lets the user pick up any node matching its items selector,
// drag it over its siblings and drop it into a new slot. While the item is
// dragged, the siblings slide apart to preview the slot; on release the item
// animates into place, the tree is reordered and [Sortable.OnChanged]
// subscribers are told what moved.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := sortable.NewScene()
//	list := sortable.NewContainer("list")
//	list.AddClass("list")
//	for _, name := range []string{"a", "b", "c"} {
//		list.AddChild(sortable.NewBox(name, "li", 200, 40))
//	}
//	scene.Root().AddChild(list)
//
//	s := sortable.New(scene, sortable.Config{ItemsSelector: ".list li"})
//	s.OnChanged(func(ev sortable.ChangeContext) { log.Println(ev.From, "->", ev.To) })
//	s.Init()
//
//	sortable.Run(scene, sortable.RunConfig{Title: "List", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Gestures
//
// Only the left button (or a touch) starts a gesture, and only one gesture
// runs at a time; presses while another is dragging or settling are ignored.
// Releasing the pointer away from any slot, or moving it out of the window,
// returns the item to where it started. Scrolling the viewport mid-drag is
// compensated without re-measuring the siblings.
//
// Items whose layout depends on their flow context can register a
// [GhostHandler] by tag. Table rows ship with one that pins cell widths for
// the duration of the gesture.
//
// # Headless use
//
// [Scene.Advance] steps a scene without a window, consuming input queued with
// [Scene.InjectPress], [Scene.InjectMove], [Scene.InjectRelease],
// [Scene.InjectScroll] and [Scene.InjectLeave]. [LoadTestScript] reads a YAML
// script of the same actions plus order snapshots; attach it with
// [Scene.SetTestRunner].
//
// # ECS integration
//
// Set an [EntityStore] with [Scene.SetEntityStore] to receive pointer and
// reorder events for nodes carrying an EntityID. The ecs sub-module provides a
// Donburi-backed store.
//
// [Ebitengine]: https://ebitengine.org
package sortable
