package main

import "github.com/kimminjae413/hairgator-hairfolio-sub001/cmd"

func main() {
	cmd.Execute()
}
