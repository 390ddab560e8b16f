// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the persistence ports. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockUserStore(ctrl)
//	store.EXPECT().FindByID(gomock.Any(), id).Return(user, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_store_mock.go github.com/meinblog/blog-api/internal/ports UserStore

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=post_store_mock.go github.com/meinblog/blog-api/internal/ports PostStore
