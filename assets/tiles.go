package assets

// TileKind maps a level tag to its atlas cell (in tiles) and whether it blocks.
type TileKind struct {
	Col, Row   int
	Collidable bool
}

// Tags is the level vocabulary. w* and v* are solid wall pieces, s* is sky.
var Tags = map[string]TileKind{
	"w":   {Col: 2, Row: 1, Collidable: true},
	"wl":  {Col: 3, Row: 1, Collidable: true},
	"wr":  {Col: 1, Row: 1, Collidable: true},
	"wd":  {Col: 2, Row: 0, Collidable: true},
	"wu":  {Col: 2, Row: 2, Collidable: true},
	"wld": {Col: 3, Row: 0, Collidable: true},
	"wrd": {Col: 1, Row: 0, Collidable: true},
	"wlu": {Col: 3, Row: 2, Collidable: true},
	"wru": {Col: 1, Row: 2, Collidable: true},
	"vld": {Col: 1, Row: 4, Collidable: true},
	"vrd": {Col: 2, Row: 4, Collidable: true},
	"vlu": {Col: 1, Row: 3, Collidable: true},
	"vru": {Col: 2, Row: 3, Collidable: true},
	"wf":  {Col: 3, Row: 3, Collidable: true},
	"wbu": {Col: 3, Row: 5, Collidable: true},
	"wbd": {Col: 3, Row: 4, Collidable: true},
	"wbl": {Col: 2, Row: 5, Collidable: true},
	"wbr": {Col: 1, Row: 5, Collidable: true},

	"s":   {Col: 5, Row: 1},
	"sc":  {Col: 5, Row: 0},
	"sb":  {Col: 4, Row: 0},
	"stl": {Col: 4, Row: 1},
	"str": {Col: 6, Row: 1},
	"s1":  {Col: 6, Row: 0},
	"s2":  {Col: 4, Row: 2},
	"s3":  {Col: 5, Row: 2},
	"s4":  {Col: 6, Row: 2},
}

// LookupTag returns the kind for tag.
func LookupTag(tag string) (TileKind, bool) {
	k, ok := Tags[tag]
	return k, ok
}
