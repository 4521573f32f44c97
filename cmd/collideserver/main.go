// Collideserver exposes pairwise collision detection over a websocket. A
// client sends a scene message placing reference shapes, and the server
// answers with the colliding id pairs. The --schema flag prints the JSON
// schema of both wire messages and exits.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/invopop/jsonschema"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/pixelcoll"
	"github.com/osuushi/pixelcoll/mask"
)

var (
	addr   = kingpin.Flag("addr", "Address to listen on.").Default(":8080").String()
	schema = kingpin.Flag("schema", "Print the wire message schemas and exit.").Bool()
)

// SceneObject places one reference shape in the scene.
type SceneObject struct {
	ID     int     `json:"id"`
	Shape  string  `json:"shape" jsonschema:"enum=l,enum=pentagon"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
}

// SceneRequest is the client message: the full scene to test.
type SceneRequest struct {
	Objects []SceneObject `json:"objects"`
}

// PairResult is one colliding pair, smaller id first.
type PairResult struct {
	ID1 int `json:"id1"`
	ID2 int `json:"id2"`
}

// SceneResponse is the server answer for one scene.
type SceneResponse struct {
	Pairs []PairResult `json:"pairs"`
	Error string       `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	kingpin.Parse()

	if *schema {
		printSchemas()
		return
	}

	http.HandleFunc("/collide", handleCollide)
	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func printSchemas() {
	for _, message := range []interface{}{&SceneRequest{}, &SceneResponse{}} {
		out, err := json.MarshalIndent(jsonschema.Reflect(message), "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, string(out))
	}
}

func handleCollide(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var request SceneRequest
		if err := json.Unmarshal(payload, &request); err != nil {
			writeResponse(conn, SceneResponse{Error: err.Error()})
			continue
		}
		writeResponse(conn, sweepScene(request))
	}
}

func writeResponse(conn *websocket.Conn, response SceneResponse) {
	if err := conn.WriteJSON(response); err != nil {
		log.Printf("write: %v", err)
	}
}

func sweepScene(request SceneRequest) SceneResponse {
	infos := make([]*pixelcoll.CollisionInfo, 0, len(request.Objects))
	for _, object := range request.Objects {
		info, err := placeObject(object)
		if err != nil {
			return SceneResponse{Error: err.Error()}
		}
		infos = append(infos, info)
	}

	pairs := []PairResult{}
	for i, info1 := range infos {
		for _, info2 := range infos[i+1:] {
			collides, err := pixelcoll.Collides(info1, info2)
			if err != nil {
				return SceneResponse{Error: err.Error()}
			}
			if !collides {
				continue
			}
			pair, err := mask.NewCollisionPair(info1.ID, info2.ID)
			if err != nil {
				return SceneResponse{Error: err.Error()}
			}
			pairs = append(pairs, PairResult{ID1: pair.ID1, ID2: pair.ID2})
		}
	}
	return SceneResponse{Pairs: pairs}
}

func placeObject(object SceneObject) (*pixelcoll.CollisionInfo, error) {
	var shape *pixelcoll.Mask
	switch object.Shape {
	case "l":
		shape = mask.NewL()
	case "pentagon":
		shape = mask.NewPentagon()
	default:
		return nil, fmt.Errorf("unknown shape %q", object.Shape)
	}

	return &pixelcoll.CollisionInfo{
		Mask:     shape,
		Position: pixelcoll.P{X: object.X, Y: object.Y},
		Angle:    object.Angle,
		ScaleX:   object.ScaleX,
		ScaleY:   object.ScaleY,
		ID:       object.ID,
	}, nil
}
