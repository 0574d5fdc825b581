package main

import "github.com/diaryquest/diaryd/cmd"

func main() {
	cmd.Execute()
}
