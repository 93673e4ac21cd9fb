package sessionlock

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameSession(t *testing.T) {
	l := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("s1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestDifferentSessionsDoNotBlock(t *testing.T) {
	l := New()
	unlock := l.Lock("s1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		l.Lock("s2")()
		close(done)
	}()
	<-done
}

func TestIdleSessionsAreDropped(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			l.Lock(fmt.Sprintf("s%d", id%4))()
		}(i)
	}
	wg.Wait()

	assert.Zero(t, l.size())

	unlock := l.Lock("s1")
	assert.Equal(t, 1, l.size())
	unlock()
	assert.Zero(t, l.size())
}
