package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/cardconnect/internal/client/iocli"
	"github.com/iudanet/cardconnect/internal/client/storage"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// testOutput собирает вывод команд
type testOutput struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (o *testOutput) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.WriteString(s)
}

func (o *testOutput) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

// newTestIO возвращает IO, который отвечает на подсказки по порядку из inputs
func newTestIO(inputs ...string) (*iocli.IOMock, *testOutput) {
	out := &testOutput{}
	var mu sync.Mutex
	next := func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if len(inputs) == 0 {
			return "", io.EOF
		}
		in := inputs[0]
		inputs = inputs[1:]
		return in, nil
	}

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { out.write(fmt.Sprintln(a...)) },
		PrintfFunc:  func(format string, a ...any) { out.write(fmt.Sprintf(format, a...)) },
		SuccessFunc: func(format string, a ...any) { out.write(fmt.Sprintf(format, a...) + "\n") },
		WarnFunc:    func(format string, a ...any) { out.write("WARN " + fmt.Sprintf(format, a...) + "\n") },
		ReadInputFunc: func(prompt string) (string, error) {
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return next()
		},
		WriteFunc: func(p []byte) (int, error) {
			out.write(string(p))
			return len(p), nil
		},
	}, out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCli собирает Cli с фиксированным временем
func newTestCli(d Deps) *Cli {
	if d.Logger == nil {
		d.Logger = testLogger()
	}
	c := New(d)
	c.now = func() time.Time { return fixedNow }
	c.settle = 20 * time.Millisecond
	return c
}

func signedInAuth() *AuthServiceMock {
	return &AuthServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{Username: "alice", UserID: "user-1", ExpiresAt: fixedNow.Add(time.Hour).Unix()}, nil
		},
	}
}

func signedOutAuth() *AuthServiceMock {
	return &AuthServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}
