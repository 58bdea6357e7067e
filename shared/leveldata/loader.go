package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	LayerCollision   = "wg-tiles"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupTriggers    = "Triggers"
)

// TriggerDeadzone is the trigger kind that sends an actor back to its spawn.
const TriggerDeadzone = "deadzone"

// LoadCollisionData parses a TMX file and returns collision data (solid tiles,
// trigger volumes and player spawn points). It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	conv := converter{
		tileW:  float64(levelMap.TileWidth),
		tileH:  float64(levelMap.TileHeight),
		height: float64(levelMap.Height),
	}
	data := &CollisionData{
		Width:    float64(levelMap.Width),
		Height:   float64(levelMap.Height),
		TileSize: conv.tileW,
	}

	// Parse solid tiles from wg-tiles layer
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerCollision {
			continue
		}
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("load TMX %s: layer %s has %d tiles, want %d",
				tmxPath, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}

				data.SolidRects = append(data.SolidRects, SolidRect{
					X:         float64(x),
					Y:         conv.height - float64(y+1),
					W:         1,
					H:         1,
					SlopeType: slopeType,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				x, y := conv.point(o.X, o.Y)
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     x,
					Y:     y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupTriggers:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				x, y := conv.point(o.X, o.Y+o.Height)
				data.Triggers = append(data.Triggers, TriggerRect{
					X:    x,
					Y:    y,
					W:    o.Width / conv.tileW,
					H:    o.Height / conv.tileH,
					Kind: kind,
					Name: o.Name,
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// converter maps TMX pixel coordinates (y-down) into world units (y-up).
type converter struct {
	tileW, tileH float64
	height       float64 // map height in tiles
}

func (c converter) point(px, py float64) (float64, float64) {
	return px / c.tileW, c.height - py/c.tileH
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadCollisionData(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

// LoadLevel loads the level called name from levelsDir. An empty name
// picks the first level in sorted order.
func LoadLevel(fsys fs.FS, levelsDir, name string) (*CollisionData, error) {
	levels, names, err := LoadAllLevels(fsys, levelsDir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return levels[names[0]], nil
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found (have %s)", name, strings.Join(names, ", "))
	}
	return data, nil
}
