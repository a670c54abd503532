package k8s

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestListNamespaces(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kube-system"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "prod-eu"}},
	)
	c := &Client{clientset: clientset}

	names, err := c.ListNamespaces(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 {
		t.Fatalf("got %d namespaces, want 3", len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"default", "kube-system", "prod-eu"} {
		if !seen[want] {
			t.Errorf("missing namespace %q in %v", want, names)
		}
	}
}

func TestDeleteNamespace(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "scratch"}},
	)
	c := &Client{clientset: clientset}

	if err := c.DeleteNamespace(context.Background(), "scratch"); err != nil {
		t.Fatal(err)
	}
	names, _ := c.ListNamespaces(context.Background())
	if len(names) != 0 {
		t.Errorf("namespace still listed after delete: %v", names)
	}
}
