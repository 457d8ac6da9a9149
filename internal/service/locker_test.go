package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLocker(t *testing.T) {
	t.Run("Serialises holders of the same id", func(t *testing.T) {
		locker := newGameLocker()
		counter := 0

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locker.Lock("game")
				counter++
				unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, counter)
		assert.Equal(t, 0, locker.size())
	})

	t.Run("Different ids do not block each other", func(t *testing.T) {
		locker := newGameLocker()

		unlockA := locker.Lock("a")
		unlockB := locker.Lock("b")
		assert.Equal(t, 2, locker.size())

		unlockA()
		unlockB()
		assert.Equal(t, 0, locker.size())
	})
}
