package queries

import "context"

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	settings SettingsReader
}

func NewSettingsQueries(settings SettingsReader) SettingsQueries {
	return &settingsQueriesImpl{settings: settings}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	s, err := q.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	return NewSettingsView(s), nil
}
