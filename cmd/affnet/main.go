// Command affnet analyzes person-to-group affiliation networks.
//
//	affnet analyze members.csv            # text report
//	affnet analyze -f yaml a.csv b.csv    # YAML report over two files
//	affnet layout --target projected a.csv > drawing.json
//	affnet generate --kind chain --persons 6 > chain.csv
package main

func main() {
	Execute()
}
