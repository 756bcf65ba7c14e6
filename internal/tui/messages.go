package tui

type loadedMsg struct {
	err error
}

type reloadedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type refreshMsg struct{}
