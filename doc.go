// Package macpad is the composition root of the macpad note keeper.
//
// It connects the core note logic (pkg/core) with a preference store
// adapter (pkg/adapters/fs by default) following a ports and adapters
// layout.
//
// A workspace holds an ordered collection of notes shown as tabs, the
// selected tab and the editor font size. Every change to the collection is
// written back to the store in full, and observers subscribed to the
// Manager are notified with the new snapshot.
//
// Usage:
//
//	ws, err := macpad.New("", macpad.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	// Open a note in a new tab
//	err = ws.Tabs.Open(ctx, macpad.NewNote("Groceries", "milk"))
//
//	// Close the selected tab
//	ws.Tabs.CloseCurrent(ctx)
package macpad
