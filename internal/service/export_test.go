package service

import "time"

// SetBoardClock replaces the clock of a service built by NewBoardService.
func SetBoardClock(s BoardService, now func() time.Time) {
	s.(*boardService).now = now
}
