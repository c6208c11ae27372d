package modellist

// Observer receives change notifications from a ModelList. Notifications are
// delivered synchronously, after the list has been updated.
type Observer interface {
	// ItemsAdded is called with the records actually inserted and the
	// position of the first one.
	ItemsAdded(records []Record, at int)
	// ItemsRemoved is called with the records actually removed.
	ItemsRemoved(records []Record)
	// CollectionReset is called after Reset replaced the whole content.
	CollectionReset()
}

// ObserverFuncs adapts plain functions to an Observer. Nil functions are
// skipped.
type ObserverFuncs struct {
	Added   func(records []Record, at int)
	Removed func(records []Record)
	Reset   func()
}

func (o ObserverFuncs) ItemsAdded(records []Record, at int) {
	if o.Added != nil {
		o.Added(records, at)
	}
}

func (o ObserverFuncs) ItemsRemoved(records []Record) {
	if o.Removed != nil {
		o.Removed(records)
	}
}

func (o ObserverFuncs) CollectionReset() {
	if o.Reset != nil {
		o.Reset()
	}
}
