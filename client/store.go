package client

import (
	"context"
	"sync"

	"shoplist/models"
)

// State is the client's view of the list: the items, whether a request
// is in flight, and the last failure message ("" when none).
type State struct {
	Items   []models.Item
	Loading bool
	Err     string
}

// action is anything the reducer loop can consume: intents dispatched
// by the UI and outcomes delivered by effect goroutines.
type action interface{ isAction() }

type fetchIntent struct{}
type createIntent struct{ req models.CreateItemRequest }
type updateIntent struct {
	id    string
	patch models.ItemPatch
}
type toggleIntent struct{ id string }
type deleteIntent struct{ id string }

type fetchOutcome struct {
	seq   uint64
	items []models.Item
	err   error
}
type itemOutcome struct {
	prepend bool
	item    models.Item
	err     error
}
type deleteOutcome struct {
	id  string
	err error
}

func (fetchIntent) isAction() {}
func (createIntent) isAction() {}
func (updateIntent) isAction() {}
func (toggleIntent) isAction() {}
func (deleteIntent) isAction() {}
func (fetchOutcome) isAction() {}
func (itemOutcome) isAction() {}
func (deleteOutcome) isAction() {}

// Store holds the client state and orchestrates effects. All state
// transitions happen on a single reducer goroutine fed by an action
// channel, one transition fully applied before the next is considered.
// Mutations run concurrently with no ordering guarantee; fetches are
// latest-wins — dispatching a new fetch cancels the in-flight one and
// its outcome, if it still arrives, is discarded.
type Store struct {
	api     API
	actions chan action
	updates chan State
	quit    chan struct{}
	once    sync.Once
}

// NewStore starts the reducer loop. Callers must drain Updates and
// call Close when done.
func NewStore(api API) *Store {
	s := &Store{
		api:     api,
		actions: make(chan action, 16),
		updates: make(chan State, 64),
		quit:    make(chan struct{}),
	}
	go s.loop()
	return s
}

// Updates emits a State snapshot after every transition. The channel
// closes when the store is closed.
func (s *Store) Updates() <-chan State {
	return s.updates
}

// Close stops the reducer loop and cancels any in-flight fetch.
func (s *Store) Close() {
	s.once.Do(func() { close(s.quit) })
}

// Fetch asks for the full list to be reloaded.
func (s *Store) Fetch() { s.dispatch(fetchIntent{}) }

// Create asks for a new item; on success it lands at the front of the
// list.
func (s *Store) Create(req models.CreateItemRequest) { s.dispatch(createIntent{req: req}) }

// Update asks for a partial update of one item.
func (s *Store) Update(id string, patch models.ItemPatch) {
	s.dispatch(updateIntent{id: id, patch: patch})
}

// Toggle flips one item's completed flag.
func (s *Store) Toggle(id string) { s.dispatch(toggleIntent{id: id}) }

// Delete removes one item.
func (s *Store) Delete(id string) { s.dispatch(deleteIntent{id: id}) }

func (s *Store) dispatch(a action) {
	select {
	case s.actions <- a:
	case <-s.quit:
	}
}

func (s *Store) loop() {
	state := State{Items: []models.Item{}}
	var fetchSeq uint64
	var cancelFetch context.CancelFunc

	for {
		select {
		case <-s.quit:
			if cancelFetch != nil {
				cancelFetch()
			}
			close(s.updates)
			return

		case a := <-s.actions:
			switch a := a.(type) {
			case fetchIntent:
				state.Loading, state.Err = true, ""
				if cancelFetch != nil {
					cancelFetch()
				}
				fetchSeq++
				seq := fetchSeq
				ctx, cancel := context.WithCancel(context.Background())
				cancelFetch = cancel
				go func() {
					items, err := s.api.ListItems(ctx)
					s.dispatch(fetchOutcome{seq: seq, items: items, err: err})
				}()

			case createIntent:
				state.Loading, state.Err = true, ""
				go func() {
					item, err := s.api.CreateItem(context.Background(), a.req)
					s.dispatch(itemOutcome{prepend: true, item: item, err: err})
				}()

			case updateIntent:
				state.Loading, state.Err = true, ""
				go func() {
					item, err := s.api.UpdateItem(context.Background(), a.id, a.patch)
					s.dispatch(itemOutcome{item: item, err: err})
				}()

			case toggleIntent:
				state.Loading, state.Err = true, ""
				go func() {
					item, err := s.api.ToggleItem(context.Background(), a.id)
					s.dispatch(itemOutcome{item: item, err: err})
				}()

			case deleteIntent:
				state.Loading, state.Err = true, ""
				go func() {
					err := s.api.DeleteItem(context.Background(), a.id)
					s.dispatch(deleteOutcome{id: a.id, err: err})
				}()

			case fetchOutcome:
				if a.seq != fetchSeq {
					// Superseded by a newer fetch; a fresher outcome
					// is still on its way.
					continue
				}
				cancelFetch = nil
				if a.err != nil {
					state.Loading = false
					state.Err = a.err.Error()
				} else {
					state = State{Items: a.items}
				}

			case itemOutcome:
				state.Loading = false
				if a.err != nil {
					state.Err = a.err.Error()
					break
				}
				state.Err = ""
				if a.prepend {
					state.Items = append([]models.Item{a.item}, state.Items...)
				} else {
					state.Items = replaceItem(state.Items, a.item)
				}

			case deleteOutcome:
				state.Loading = false
				if a.err != nil {
					state.Err = a.err.Error()
					break
				}
				state.Err = ""
				state.Items = removeItem(state.Items, a.id)
			}

			select {
			case s.updates <- state:
			case <-s.quit:
			}
		}
	}
}

// replaceItem swaps the matching item by ID, order unchanged. A fresh
// slice is returned so earlier snapshots stay valid.
func replaceItem(items []models.Item, item models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i, existing := range items {
		if existing.ID == item.ID {
			out[i] = item
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeItem(items []models.Item, id string) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, existing := range items {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}
