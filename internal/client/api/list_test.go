package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLists_NonArrayBodyBecomesEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"unexpected shape"}`))
	})

	lists, err := c.Lists(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, lists)
	assert.Empty(t, lists)
}

func TestDeleteList_PlainTextSuccessBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "l1", r.URL.Query().Get("listDocumentId"))
		w.Write([]byte("Lista deletada"))
	})

	msg, err := c.DeleteList(context.Background(), "t1", "l1")
	require.NoError(t, err)
	assert.Equal(t, "Lista deletada", msg)
}

func TestDeleteList_PlainTextErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Lista não encontrada"))
	})

	_, err := c.DeleteList(context.Background(), "t1", "l1")
	require.True(t, IsKind(err, KindHTTP))
	assert.Equal(t, "Lista não encontrada", UserMessage(err))
}

func TestCreateList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/createList", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"documentId":"l7","name":"enxoval"}}`))
	})

	list, err := c.CreateList(context.Background(), "t1", "enxoval")
	require.NoError(t, err)
	assert.Equal(t, "l7", list.DocumentID)
	assert.Equal(t, "enxoval", list.Name)
}

func TestCreateList_EmptyName(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.CreateList(context.Background(), "t1", "   ")
	requireValidation(t, err, "Informe o nome da lista")
	assert.Equal(t, int64(0), hits.Load())
}

func TestUpdateList_RequiresDocumentID(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.UpdateList(context.Background(), "t1", "", "novo nome")
	requireValidation(t, err, "Identificador da lista não informado")
	assert.Equal(t, int64(0), hits.Load())
}

func TestTopics_ScopedToList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/listTopic", r.URL.Path)
		assert.Equal(t, "l1", r.URL.Query().Get("listDocumentId"))
		w.Write([]byte(`[{"id":1,"documentId":"t1","name":"fraldas","listDocumentId":"l1"}]`))
	})

	topics, err := c.Topics(context.Background(), "t1", "l1")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "fraldas", topics[0].Name)
}

func TestDeleteTopic_FallbackMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	msg, err := c.DeleteTopic(context.Background(), "t1", "top1")
	require.NoError(t, err)
	assert.Equal(t, "Item deletado", msg)
}
